package cmd

import (
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	_ = os.Unsetenv(envHost)
	_ = os.Unsetenv(envProxy)
	_ = os.Unsetenv(envDebug)
	_ = os.Unsetenv(envLogLevel)
	_ = os.Unsetenv(envLogFile)
	os.Exit(m.Run())
}
