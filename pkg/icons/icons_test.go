package icons

import "testing"

func TestChevronCodepoints(t *testing.T) {
	if ChevronDown.Codepoint != 0xE70D || ChevronUp.Codepoint != 0xE70E {
		t.Fatalf("chevrons = %U %U", ChevronDown.Codepoint, ChevronUp.Codepoint)
	}
	if got := ChevronUp.Text(false); got != "▲" {
		t.Errorf("fallback = %q", got)
	}
	if got := ChevronUp.Text(true); got != "\ue70e" {
		t.Errorf("glyph = %q", got)
	}
}

func TestTableIsSortedAndUnique(t *testing.T) {
	all := All()
	seen := make(map[string]bool)
	for i, icon := range all {
		if seen[icon.Name] {
			t.Errorf("duplicate icon %s", icon.Name)
		}
		seen[icon.Name] = true
		if i > 0 && all[i-1].Name > icon.Name {
			t.Errorf("icons out of order at %s", icon.Name)
		}
		if got, ok := Lookup(icon.Name); !ok || got != icon {
			t.Errorf("Lookup(%s) = %+v, %v", icon.Name, got, ok)
		}
	}
	if _, ok := Lookup("Missing"); ok {
		t.Error("Lookup should fail for unknown names")
	}
}
