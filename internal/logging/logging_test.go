package logging

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
)

func TestInit_DisabledWithoutEnv(t *testing.T) {
	os.Unsetenv("DOG_DEBUG")
	resetOnce()
	Init()

	if L.GetLevel() != zerolog.Disabled {
		t.Errorf("level = %v, want Disabled", L.GetLevel())
	}
}

func TestInit_TraceLevel(t *testing.T) {
	t.Setenv("DOG_DEBUG", "trace")
	resetOnce()
	Init()

	if L.GetLevel() != zerolog.TraceLevel {
		t.Errorf("level = %v, want Trace", L.GetLevel())
	}
}

func TestInit_InfoLevelOnAnyOtherValue(t *testing.T) {
	t.Setenv("DOG_DEBUG", "1")
	resetOnce()
	Init()

	if L.GetLevel() != zerolog.InfoLevel {
		t.Errorf("level = %v, want Info", L.GetLevel())
	}
}
