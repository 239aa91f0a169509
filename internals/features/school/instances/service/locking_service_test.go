package service

import (
	"testing"

	imodel "novaeclass_backend/internals/features/school/instances/model"
)

func floatPtr(f float64) *float64 { return &f }

func inst(completed bool, score *float64) imodel.AssignmentInstanceModel {
	return imodel.AssignmentInstanceModel{
		AssignmentInstanceCompleted: completed,
		AssignmentInstanceScore:     score,
	}
}

func TestComputeLocks(t *testing.T) {
	tests := []struct {
		name      string
		instances []imodel.AssignmentInstanceModel
		want      []bool
	}{
		{
			name:      "assignment pertama selalu terbuka",
			instances: []imodel.AssignmentInstanceModel{inst(false, nil)},
			want:      []bool{false},
		},
		{
			name: "skor lulus membuka assignment berikutnya",
			instances: []imodel.AssignmentInstanceModel{
				inst(true, floatPtr(80)),
				inst(false, nil),
			},
			want: []bool{false, false},
		},
		{
			name: "skor gagal mengunci assignment berikutnya",
			instances: []imodel.AssignmentInstanceModel{
				inst(true, floatPtr(50)),
				inst(false, nil),
				inst(false, nil),
			},
			want: []bool{false, true, true},
		},
		{
			name: "instance yang sudah selesai tidak pernah dikunci",
			instances: []imodel.AssignmentInstanceModel{
				inst(true, floatPtr(50)),
				inst(true, floatPtr(90)),
				inst(false, nil),
			},
			// yang kedua completed jadi terbuka, dan skornya 90 membuka yang ketiga
			want: []bool{false, false, false},
		},
		{
			name: "instance belum selesai tidak mengubah skor sebelumnya",
			instances: []imodel.AssignmentInstanceModel{
				inst(true, floatPtr(100)),
				inst(false, nil),
				inst(false, nil),
			},
			want: []bool{false, false, false},
		},
		{
			name: "tepat di ambang 75 dianggap lulus",
			instances: []imodel.AssignmentInstanceModel{
				inst(true, floatPtr(75)),
				inst(false, nil),
			},
			want: []bool{false, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeLocks(tt.instances)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("locks[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
