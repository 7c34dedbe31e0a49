package main

import "testing"

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCmd()
	want := map[string]bool{"compress": false, "decompress": false, "info": false, "batch": false}

	for _, cmd := range root.Commands() {
		name := cmd.Name()
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}

	for name, found := range want {
		if !found {
			t.Errorf("root command missing %q subcommand", name)
		}
	}
}
