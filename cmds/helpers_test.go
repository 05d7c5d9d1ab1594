package cmds

import "testing"

func TestVar(t *testing.T) {
	a := Var[int64]("TestVarA")
	b := Var[string]("TestVarB")
	GlobalExecutor.MustExecute([]string{
		"TestVarA", "117440",
		"TestVarB", "input.txt",
	})
	if *a != 117440 {
		t.Fatalf("got %d", *a)
	}
	if *b != "input.txt" {
		t.Fatalf("got %s", *b)
	}
}

func TestTypedVar(t *testing.T) {
	type Path string
	v := Var[Path]("TestTypedVar")
	GlobalExecutor.MustExecute([]string{
		"TestTypedVar", "day17.txt",
	})
	if *v != "day17.txt" {
		t.Fatalf("got %s", *v)
	}
}

func TestSwitch(t *testing.T) {
	trace := Switch("TestSwitch")
	GlobalExecutor.MustExecute([]string{"TestSwitch"})
	if !*trace {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{"!TestSwitch"})
	if *trace {
		t.Fatal()
	}
}
