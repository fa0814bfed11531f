package types

import "testing"

func TestParseShapeType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ShapeType
		wantErr bool
	}{
		{"大写名称", "BOX", ShapeBox, false},
		{"小写名称", "paraboloid", ShapeParaboloid, false},
		{"带空白", "  torus ", ShapeTorus, false},
		{"可选楔形", "Wedge", ShapeWedge, false},
		{"未知名称", "PYRAMID", ShapeUnknown, true},
		{"空字符串", "", ShapeUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseShapeType(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseShapeType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseShapeType(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestShapePools(t *testing.T) {
	pool := DefaultShapePool()
	if len(pool) != 7 {
		t.Fatalf("Expected 7 shapes in default pool, got %d", len(pool))
	}
	for _, s := range pool {
		if s == ShapeWedge {
			t.Error("Default pool should not contain the wedge variant")
		}
		if !s.IsValid() {
			t.Errorf("Shape %d should be valid", s)
		}
	}

	if len(AllShapes()) != 8 {
		t.Errorf("Expected 8 shapes in total, got %d", len(AllShapes()))
	}
	if ShapeUnknown.IsValid() || ShapeUnknown.String() != "UNKNOWN" {
		t.Error("ShapeUnknown should be invalid and print as UNKNOWN")
	}
}
