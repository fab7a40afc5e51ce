package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		name   string
		exp    zapcore.Level
		expErr bool
	}{
		{name: "debug", exp: zapcore.DebugLevel},
		{name: "info", exp: zapcore.InfoLevel},
		{name: "WARN", exp: zapcore.WarnLevel},
		{name: "error", exp: zapcore.ErrorLevel},
		{name: "loud", expErr: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			act, err := ParseLevel(c.name)
			if c.expErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if act != c.exp {
				t.Fatalf("exp %s but got %s", c.exp, act)
			}
		})
	}
}

func TestNewZapLogger(t *testing.T) {
	log, err := NewZapLogger(zapcore.WarnLevel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if log.Core().Enabled(zapcore.InfoLevel) {
		t.Fatal("info should be disabled at warn level")
	}
	if !log.Core().Enabled(zapcore.ErrorLevel) {
		t.Fatal("error should be enabled at warn level")
	}
}
