package cmd

import (
	"testing"
)

func TestCommandsRegistered(t *testing.T) {
	for _, use := range []string{"db:migrate", "search:index", "products:import", "cron:start"} {
		c, _, err := rootCmd.Find([]string{use})
		if err != nil || c == rootCmd {
			t.Errorf("%s not registered: %v", use, err)
		}
	}
}

func TestSearchIndexFlagDefaults(t *testing.T) {
	if got := searchIndexCmd.Flags().Lookup("batch").DefValue; got != "500" {
		t.Errorf("batch default = %s", got)
	}
	if got := searchIndexCmd.Flags().Lookup("workers").DefValue; got != "4" {
		t.Errorf("workers default = %s", got)
	}
	if got := migrateCmd.Flags().Lookup("down").DefValue; got != "false" {
		t.Errorf("down default = %s", got)
	}
}
