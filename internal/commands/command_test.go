package commands

import (
	"errors"
	"testing"

	"github.com/sandeepkv93/dayboard/internal/model"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/add morning drink water", TypeAdd},
		{"template Evening read a book", TypeTemplate},
		{"tpl noon walk", TypeTemplate},
		{"untemplate noon 2", TypeUntemplate},
		{"done evening", TypeDone},
		{"clear", TypeClear},
		{"/reset", TypeReset},
		{"apply", TypeApply},
		{"open 2024-01-01", TypeOpen},
		{"open today", TypeOpen},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseArguments(t *testing.T) {
	cmd, err := Parse("add Noon   eat   lunch ")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Add.Bucket != model.BucketNoon || cmd.Add.Text != "eat lunch" {
		t.Fatalf("unexpected add args: %+v", cmd.Add)
	}

	cmd, err = Parse("untemplate morning 1")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Untemplate.Index != 0 || cmd.Untemplate.Bucket != model.BucketMorning {
		t.Fatalf("unexpected untemplate args: %+v", cmd.Untemplate)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		in   string
		code ErrorCode
	}{
		{"   ", ErrCodeEmptyInput},
		{"/", ErrCodeEmptyInput},
		{"/unknown do x", ErrCodeUnknownCommand},
		{"add morning", ErrCodeInvalidArgument},
		{"add midnight snack", ErrCodeInvalidArgument},
		{"untemplate noon zero", ErrCodeInvalidArgument},
		{"untemplate noon 0", ErrCodeInvalidArgument},
		{"done", ErrCodeInvalidArgument},
		{"open yesterday", ErrCodeInvalidArgument},
	}
	for _, tc := range cases {
		_, err := Parse(tc.in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != tc.code {
			t.Fatalf("parse %q: expected %s, got %v", tc.in, tc.code, err)
		}
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/add evening write docs")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Add: func(a AddArgs) (Result, error) {
			called = true
			if a.Text != "write docs" || a.Bucket != model.BucketEvening {
				t.Fatalf("unexpected args: %+v", a)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("clear")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}
