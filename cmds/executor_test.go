package cmds

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var part int
	var file string
	executor.Define("-part", Func(func(n int) {
		part = n
	}))
	executor.Define("-file", Func(func(path string) {
		file = path
	}).Alias("-f"))

	if err := executor.Execute([]string{
		"-part", "2",
		"-f", "input.txt",
	}); err != nil {
		t.Fatal(err)
	}
	if part != 2 {
		t.Fatalf("got %d", part)
	}
	if file != "input.txt" {
		t.Fatalf("got %s", file)
	}

	err := executor.Execute([]string{"-nope"})
	if err == nil || !strings.Contains(err.Error(), "unknown command: -nope") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{"-part", "x"})
	if err == nil || !strings.Contains(err.Error(), `parse "x"`) {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{"-part"})
	if err == nil || !strings.Contains(err.Error(), "missing int argument") {
		t.Fatalf("got %v", err)
	}
}

func TestCommandError(t *testing.T) {
	executor := NewExecutor()
	boom := errors.New("boom")
	executor.Define("fail", Func(func() error {
		return boom
	}))
	executor.Define("ok", Func(func() error {
		return nil
	}))
	if err := executor.Execute([]string{"ok"}); err != nil {
		t.Fatal(err)
	}
	if err := executor.Execute([]string{"fail"}); !errors.Is(err, boom) {
		t.Fatalf("got %v", err)
	}
}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var year, day int
	executor.Define("-fetch", Sub(map[string]*Command{
		"year": Func(func(n int) {
			year = n
		}),
		"day": Func(func(n int) {
			day = n
		}),
	}))

	if err := executor.Execute([]string{
		"-fetch",
		"year", "2024",
		"day", "17",
	}); err != nil {
		t.Fatal(err)
	}
	if year != 2024 || day != 17 {
		t.Fatalf("got %d %d", year, day)
	}

	// subs are only visible after the parent
	if err := executor.Execute([]string{"day", "1"}); err == nil {
		t.Fatal("should fail")
	}
}

func TestDuplicatedSubCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"a": nil,
	}))
	executor.Define("bar", Sub(map[string]*Command{
		"a": nil,
	}))
	err := executor.Execute([]string{"foo", "bar"})
	if err == nil || !strings.Contains(err.Error(), "duplicated sub command: bar a") {
		t.Fatalf("got %v", err)
	}
}

func TestDuplicatedCommand(t *testing.T) {
	executor := NewExecutor()
	defer func() {
		if recover() == nil {
			t.Fatal("should panic")
		}
	}()
	executor.Define("help", Func(func() {}))
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var n int64
	var s string
	executor.Define("foo", Func(func(arg *int64, arg2 *string) {
		n = *arg
		s = *arg2
	}))

	if err := executor.Execute([]string{"foo", "-3", "bar"}); err != nil {
		t.Fatal(err)
	}
	if n != -3 || s != "bar" {
		t.Fatalf("got %d %q", n, s)
	}

	if err := executor.Execute([]string{"foo", "99"}); err != nil {
		t.Fatal(err)
	}
	if n != 99 || s != "" {
		t.Fatalf("got %d %q", n, s)
	}

	if err := executor.Execute([]string{"foo"}); err != nil {
		t.Fatal(err)
	}
	if n != 0 || s != "" {
		t.Fatalf("got %d %q", n, s)
	}
}

func TestFuncPanics(t *testing.T) {
	for _, fn := range []any{
		42,
		func() int { return 1 },
		func() (error, error) { return nil, nil },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("%T should panic", fn)
				}
			}()
			Func(fn)
		}()
	}
}

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("-fetch", Sub(map[string]*Command{
		"day": Func(func(int) {}).Desc("DAY"),
	}).Desc("FETCH"))
	buf := new(bytes.Buffer)
	executor.PrintUsage(buf)
	out := buf.String()
	for _, want := range []string{"-fetch\tFETCH", "  day\tDAY", "-h, -help, --help, help\tprint usage"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %s", want, out)
		}
	}
}
