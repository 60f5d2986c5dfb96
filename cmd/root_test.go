package cmd

import "testing"

func TestPersistentFlagsRegistered(t *testing.T) {
	for _, name := range []string{"config", "verbose"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("persistent flag %q not registered", name)
		}
	}
}

func TestVersionCommandWithVerbose(t *testing.T) {
	rootCmd.SetArgs([]string{"--verbose", "version"})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !verbose {
		t.Error("verbose flag not parsed")
	}
}
