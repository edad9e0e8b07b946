package appearance

import "testing"

func TestNewStateDefaultsToLight(t *testing.T) {
	if got := NewState("").Mode(); got != Light {
		t.Errorf("NewState(\"\").Mode() = %q, want light", got)
	}
	if got := NewState(Dark).Mode(); got != Dark {
		t.Errorf("NewState(Dark).Mode() = %q, want dark", got)
	}
}

func TestToggle(t *testing.T) {
	s := NewState(Light)

	var seen []Mode
	s.OnChange(func(m Mode) { seen = append(seen, m) })

	if got := s.Toggle(); got != Dark {
		t.Errorf("first Toggle() = %q, want dark", got)
	}
	if got := s.Toggle(); got != Light {
		t.Errorf("second Toggle() = %q, want light", got)
	}
	if len(seen) != 2 || seen[0] != Dark || seen[1] != Light {
		t.Errorf("listeners saw %v, want [dark light]", seen)
	}
}

func TestOnChange_Remove(t *testing.T) {
	s := NewState(Light)

	var first, second int
	remove := s.OnChange(func(Mode) { first++ })
	s.OnChange(func(Mode) { second++ })

	s.Toggle()
	remove()
	remove()
	s.Toggle()

	if first != 1 {
		t.Errorf("removed listener ran %d times, want 1", first)
	}
	if second != 2 {
		t.Errorf("remaining listener ran %d times, want 2", second)
	}
	if got := s.Listeners(); got != 1 {
		t.Errorf("Listeners() = %d, want 1", got)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"light", Light, false},
		{"Dark", Dark, false},
		{" dark ", Dark, false},
		{"sepia", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSwitchLabel(t *testing.T) {
	if got := Light.SwitchLabel(); got != "Switch to Dark Mode" {
		t.Errorf("Light.SwitchLabel() = %q", got)
	}
	if got := Dark.SwitchLabel(); got != "Switch to Light Mode" {
		t.Errorf("Dark.SwitchLabel() = %q", got)
	}
}

func TestProcessIsSingleton(t *testing.T) {
	if Process() != Process() {
		t.Error("Process() should return the same State")
	}
}
