package json

import "testing"

func TestTransitionTableExhaustive(t *testing.T) {
	for s := state(0); s < numStates; s++ {
		for c := charClass(0); c < numClasses; c++ {
			cell := transitionTable[s][c]
			switch cell.kind {
			case kindShift:
				if cell.next >= numStates {
					t.Errorf("[%s][%d] shifts to unknown state %d", s, c, cell.next)
				}
			case kindAction:
				if cell.act == actNone {
					t.Errorf("[%s][%d] is an action cell without action", s, c)
				}
			case kindReject:
			default:
				t.Errorf("[%s][%d] is not filled", s, c)
			}
		}
	}
}

func TestLookupOutOfRange(t *testing.T) {
	if lookup(numStates, classSpace).kind != kindReject {
		t.Error("Expected unknown state to reject")
	}
	if lookup(stateStart, classInvalid).kind != kindReject {
		t.Error("Expected invalid class to reject")
	}
}

func TestStateNames(t *testing.T) {
	seen := map[string]bool{}
	for s := state(0); s < numStates; s++ {
		name := s.String()
		if name == "" {
			t.Errorf("state %d has no name", s)
		}
		if seen[name] {
			t.Errorf("duplicate state name %q", name)
		}
		seen[name] = true
	}
	if numStates.String() != "state(?)" {
		t.Errorf("Expected placeholder name, got %q", numStates.String())
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		in   int
		want charClass
	}{
		{' ', classSpace},
		{'\t', classWhite},
		{'\n', classWhite},
		{'\r', classWhite},
		{'{', classLCurB},
		{'}', classRCurB},
		{'[', classLSqrB},
		{']', classRSqrB},
		{':', classColon},
		{',', classComma},
		{'"', classQuote},
		{'\\', classBacks},
		{'/', classSlash},
		{'+', classPlus},
		{'-', classMinus},
		{'.', classPoint},
		{'0', classZero},
		{'5', classDigit},
		{'9', classDigit},
		{'a', classLowA},
		{'u', classLowU},
		{'C', classABCDF},
		{'E', classE},
		{'G', classEtc},
		{'T', classEtc},
		{'~', classEtc},
		{0x7f, classEtc},
		{0x80, classEtc},
		{0xff, classEtc},
		{0x4e2d, classEtc},
		{0, classInvalid},
		{0x1f, classInvalid},
		{'\f', classInvalid},
		{-1, classInvalid},
	}
	for _, tt := range tests {
		if got := classify(tt.in); got != tt.want {
			t.Errorf("classify(%#x) = %d; want %d", tt.in, got, tt.want)
		}
	}
}

func TestASCIIControlCharsInvalid(t *testing.T) {
	for ch := 0; ch < 0x20; ch++ {
		got := classify(ch)
		switch ch {
		case '\t', '\n', '\r':
			if got != classWhite {
				t.Errorf("classify(%#x) = %d; want whitespace", ch, got)
			}
		default:
			if got != classInvalid {
				t.Errorf("classify(%#x) = %d; want invalid", ch, got)
			}
		}
	}
}
