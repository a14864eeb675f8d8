package annotate

import (
	"fmt"
	"log"
	"sort"
)

// Command is an operator action bound to a key
type Command int

const (
	CmdNone Command = iota
	CmdMidlines
	CmdAllMidlines
	CmdExport
	CmdExportDebug
	CmdSave
	CmdLoad
	CmdToggleElevator
	CmdToggleStairs
	CmdNextID
	CmdPreviousID
	CmdDelete
)

var commandNames = map[Command]string{
	CmdMidlines:       "midlines",
	CmdAllMidlines:    "all-midlines",
	CmdExport:         "export",
	CmdExportDebug:    "export-debug",
	CmdSave:           "save",
	CmdLoad:           "load",
	CmdToggleElevator: "toggle-elevator",
	CmdToggleStairs:   "toggle-stairs",
	CmdNextID:         "next-id",
	CmdPreviousID:     "previous-id",
	CmdDelete:         "delete",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "none"
}

// ParseCommand resolves a command name
func ParseCommand(name string) (Command, error) {
	for cmd, n := range commandNames {
		if n == name {
			return cmd, nil
		}
	}
	return CmdNone, fmt.Errorf("unknown command %q", name)
}

// CommandNames lists every command name, sorted
func CommandNames() []string {
	names := make([]string, 0, len(commandNames))
	for _, n := range commandNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// HandleKey runs the command bound to key. Unbound keys return CmdNone.
func (s *Session) HandleKey(key rune) (Command, error) {
	name, ok := s.cfg.Command(key)
	if !ok {
		return CmdNone, nil
	}
	cmd, err := ParseCommand(name)
	if err != nil {
		return CmdNone, fmt.Errorf("key %q: %w", key, err)
	}
	return cmd, s.Execute(cmd)
}

// Execute runs a command. Commands that do not apply to the current mode
// are silent no-ops.
func (s *Session) Execute(cmd Command) error {
	switch cmd {
	case CmdMidlines:
		net := s.ComputeSelectedMidlines()
		log.Printf("[SESSION] Midline paths: %d", len(net.Segments))
	case CmdAllMidlines:
		net := s.ComputeAllMidlines()
		log.Printf("[SESSION] All midline paths: %d", len(net.Segments))
	case CmdExport:
		return s.ExportFile(s.cfg.Output, false)
	case CmdExportDebug:
		return s.ExportFile(s.cfg.Output, true)
	case CmdSave:
		return s.SaveSettings()
	case CmdLoad:
		return s.LoadSettings()
	case CmdToggleElevator:
		s.ToggleMode(Elevator)
	case CmdToggleStairs:
		s.ToggleMode(Stairs)
	case CmdNextID, CmdPreviousID:
		kind, ok := s.mode.Kind()
		if !ok {
			return nil
		}
		delta := 1
		if cmd == CmdPreviousID {
			delta = -1
		}
		s.AdjustID(kind, delta)
	case CmdDelete:
		s.DeleteSelected()
	}
	return nil
}
