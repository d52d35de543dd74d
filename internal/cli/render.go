package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/amirasaad/propdesc/pkg/descriptor"
	"github.com/amirasaad/propdesc/pkg/record"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

// status is the machine-readable form of the frozen command.
type status struct {
	AnyFrozen  bool                   `json:"anyFrozen" yaml:"anyFrozen"`
	Level      descriptor.FreezeLevel `json:"level" yaml:"level"`
	Extensible bool                   `json:"extensible" yaml:"extensible"`
	Sealed     bool                   `json:"sealed" yaml:"sealed"`
	Frozen     bool                   `json:"frozen" yaml:"frozen"`
}

// encode writes v as JSON or YAML. It reports false for table output.
func (a *App) encode(v any) (bool, error) {
	switch a.cfg.Output.Format {
	case "json":
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, err
		}
		return true, enc.Close()
	default:
		return false, nil
	}
}

func (a *App) renderKeys(keys []string) error {
	if done, err := a.encode(keys); done {
		return err
	}
	if len(keys) == 0 {
		_, err := fmt.Fprintln(a.out, "No matching keys")
		return err
	}
	table := tablewriter.NewWriter(a.out)
	table.Header("Key")
	for _, k := range keys {
		if err := table.Append(k); err != nil {
			return err
		}
	}
	return table.Render()
}

func (a *App) renderStatus(r *record.Record) error {
	s := status{
		AnyFrozen:  descriptor.IsAnyFrozen(r),
		Level:      descriptor.Level(r),
		Extensible: r.IsExtensible(),
		Sealed:     r.IsSealed(),
		Frozen:     r.IsFrozen(),
	}
	if done, err := a.encode(s); done {
		return err
	}
	table := tablewriter.NewWriter(a.out)
	table.Header("Any Frozen", "Level", "Extensible", "Sealed", "Frozen")
	if err := table.Append(a.boolCell(s.AnyFrozen), string(s.Level),
		a.boolCell(s.Extensible), a.boolCell(s.Sealed), a.boolCell(s.Frozen)); err != nil {
		return err
	}
	return table.Render()
}

// renderRecord prints a record: its enumerable keys for json/yaml, its
// snapshot when requested, and a descriptor table otherwise.
func (a *App) renderRecord(r *record.Record) error {
	if a.cfg.Output.Snapshot {
		if done, err := a.encode(r.Snapshot()); done {
			return err
		}
	} else if done, err := a.encode(r); done {
		return err
	}
	return a.renderTable(r)
}

func (a *App) renderDescriptors(r *record.Record) error {
	if done, err := a.encode(r.Snapshot()); done {
		return err
	}
	return a.renderTable(r)
}

func (a *App) renderTable(r *record.Record) error {
	table := tablewriter.NewWriter(a.out)
	table.Header("Key", "Value", "Writable", "Enumerable", "Configurable")
	for _, p := range descriptor.Describe(r) {
		if err := table.Append(p.Key, valueCell(p.Value),
			a.boolCell(p.Writable), a.boolCell(p.Enumerable), a.boolCell(p.Configurable)); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(a.out, "\nLevel: %s\n", descriptor.Level(r))
	return err
}

func (a *App) boolCell(b bool) string {
	c := color.New(color.FgRed)
	if b {
		c = color.New(color.FgGreen)
	}
	if !a.cfg.Output.Color {
		c.DisableColor()
	}
	return c.Sprint(strconv.FormatBool(b))
}

func valueCell(v any) string {
	if v == nil {
		return "null"
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}
