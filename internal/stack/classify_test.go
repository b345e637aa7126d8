package stack

import "testing"

func TestClassifyCommands(t *testing.T) {
	items := []Command{
		{Name: "a", FilePath: "./.claude/commands/a.md"},
		{Name: "b", FilePath: "commands/b.md"},
		{Name: "c", FilePath: "/home/user/.claude/commands/c.md"},
	}

	p := Classify(items)

	if len(p.Local) != 1 || p.Local[0].Name != "a" {
		t.Errorf("Local = %+v, want just a", p.Local)
	}
	if len(p.Global) != 2 {
		t.Errorf("Global = %+v, want b and c", p.Global)
	}
}

func TestClassifyAgentsEmpty(t *testing.T) {
	p := Classify([]Agent{})
	if len(p.Global) != 0 || len(p.Local) != 0 {
		t.Errorf("expected empty partition, got %+v", p)
	}
}

func TestClassifyAllLocal(t *testing.T) {
	items := []Agent{
		{Name: "x", FilePath: "./.claude/agents/x.md"},
		{Name: "y", FilePath: "./.claude/agents/y.md"},
	}
	p := Classify(items)
	if len(p.Local) != 2 || len(p.Global) != 0 {
		t.Errorf("partition = %+v", p)
	}
}
