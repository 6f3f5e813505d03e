package services

import "testing"

func TestLevelFor(t *testing.T) {
	tests := []struct {
		name        string
		xp          int
		wantLevel   int
		wantName    string
		wantFloor   int
		wantCeiling int
	}{
		{name: "zero xp", xp: 0, wantLevel: 1, wantName: "Bronze", wantFloor: 0, wantCeiling: 100},
		{name: "negative xp clamps", xp: -40, wantLevel: 1, wantName: "Bronze", wantFloor: 0, wantCeiling: 100},
		{name: "just below threshold", xp: 99, wantLevel: 1, wantName: "Bronze", wantFloor: 0, wantCeiling: 100},
		{name: "exact threshold", xp: 100, wantLevel: 2, wantName: "Silver", wantFloor: 100, wantCeiling: 250},
		{name: "mid band", xp: 600, wantLevel: 4, wantName: "Platinum", wantFloor: 500, wantCeiling: 1000},
		{name: "top threshold", xp: 2000, wantLevel: 6, wantName: "Master", wantFloor: 2000, wantCeiling: 2000},
		{name: "beyond top", xp: 99999, wantLevel: 6, wantName: "Master", wantFloor: 2000, wantCeiling: 2000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LevelFor(tt.xp)
			if got.Level != tt.wantLevel {
				t.Fatalf("LevelFor(%d).Level = %d, want %d", tt.xp, got.Level, tt.wantLevel)
			}
			if got.Name != tt.wantName {
				t.Fatalf("LevelFor(%d).Name = %q, want %q", tt.xp, got.Name, tt.wantName)
			}
			if got.XPFloor != tt.wantFloor || got.XPCeiling != tt.wantCeiling {
				t.Fatalf("LevelFor(%d) band = [%d, %d], want [%d, %d]",
					tt.xp, got.XPFloor, got.XPCeiling, tt.wantFloor, tt.wantCeiling)
			}
		})
	}
}

func TestLevelTableIsMonotonic(t *testing.T) {
	table := LevelTable()
	if len(table) != 6 {
		t.Fatalf("expected 6 levels, got %d", len(table))
	}
	for index := 1; index < len(table); index++ {
		if table[index].Level != table[index-1].Level+1 {
			t.Fatalf("levels not consecutive at index %d", index)
		}
		if table[index].XPFloor <= table[index-1].XPFloor {
			t.Fatalf("xp floors not strictly increasing at index %d", index)
		}
		if table[index-1].XPCeiling != table[index].XPFloor {
			t.Fatalf("band gap between levels %d and %d", table[index-1].Level, table[index].Level)
		}
	}
	if table[0].XPFloor != 0 {
		t.Fatalf("expected first level to start at 0, got %d", table[0].XPFloor)
	}
}
