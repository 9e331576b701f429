package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

const appName = "ascendant"

// Help sections, printed in this order
const (
	SectionStorage     = "Storage"
	SectionDiagnostics = "Diagnostics"
)

var sectionOrder = []string{SectionStorage, SectionDiagnostics}

// ErrUnknownCommand is returned by Dispatch for a name nobody registered
var ErrUnknownCommand = errors.New("unknown command")

// Command is one devtool subcommand
type Command interface {
	Name() string
	Description() string
	Run(args []string) error
}

// ArgsUsager is implemented by commands that take positional arguments
type ArgsUsager interface {
	ArgsUsage() string
}

// Registry holds the devtool commands grouped into help sections
type Registry struct {
	commands map[string]Command
	sections map[string]string
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
		sections: make(map[string]string),
	}
}

// newDefaultRegistry registers the ascendant operations commands
func newDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(SectionStorage, &MigrateCommand{})
	r.Register(SectionStorage, &CreateDBCommand{})
	r.Register(SectionStorage, &WaitForDBCommand{})
	r.Register(SectionDiagnostics, &DoctorCommand{})
	r.Register(SectionDiagnostics, &HealthCheckCommand{})
	return r
}

// Register adds cmd under section
func (r *Registry) Register(section string, cmd Command) {
	r.commands[cmd.Name()] = cmd
	r.sections[cmd.Name()] = section
}

// Get looks a command up by name
func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns the commands of section sorted by name. An empty section lists all.
func (r *Registry) List(section string) []Command {
	cmds := make([]Command, 0, len(r.commands))
	for name, cmd := range r.commands {
		if section == "" || r.sections[name] == section {
			cmds = append(cmds, cmd)
		}
	}
	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].Name() < cmds[j].Name()
	})
	return cmds
}

// Dispatch runs the command named by args[0] with the remaining args
func (r *Registry) Dispatch(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: none given", ErrUnknownCommand)
	}
	cmd, ok := r.Get(args[0])
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	return cmd.Run(args[1:])
}

// PrintHelp writes the usage text, one block per section
func (r *Registry) PrintHelp(w io.Writer) {
	fmt.Fprintf(w, "Usage: devtool <command> [args...]\n\nOperations tool for the %s engine and its storage.\n", appName)

	width := 0
	for _, cmd := range r.commands {
		if n := len(usageLine(cmd)); n > width {
			width = n
		}
	}

	for _, section := range sectionOrder {
		cmds := r.List(section)
		if len(cmds) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s:\n", section)
		for _, cmd := range cmds {
			line := usageLine(cmd)
			fmt.Fprintf(w, "  %s%s  %s\n", line, strings.Repeat(" ", width-len(line)), cmd.Description())
		}
	}
}

func usageLine(cmd Command) string {
	if u, ok := cmd.(ArgsUsager); ok && u.ArgsUsage() != "" {
		return cmd.Name() + " " + u.ArgsUsage()
	}
	return cmd.Name()
}
