package model

import "testing"

func sp(s string) *string { return &s }

func TestValidateShape(t *testing.T) {
	tests := []struct {
		name    string
		q       QuestionModel
		wantErr bool
	}{
		{
			name: "MC lengkap valid",
			q: QuestionModel{
				QuestionType:          QuestionTypeMC,
				QuestionOptionA:       sp("a"),
				QuestionOptionB:       sp("b"),
				QuestionOptionC:       sp("c"),
				QuestionOptionD:       sp("d"),
				QuestionCorrectOption: sp("B"),
			},
			wantErr: false,
		},
		{
			name: "MC kurang opsi",
			q: QuestionModel{
				QuestionType:          QuestionTypeMC,
				QuestionOptionA:       sp("a"),
				QuestionOptionB:       sp("b"),
				QuestionCorrectOption: sp("A"),
			},
			wantErr: true,
		},
		{
			name: "MC correct_option di luar A-D",
			q: QuestionModel{
				QuestionType:          QuestionTypeMC,
				QuestionOptionA:       sp("a"),
				QuestionOptionB:       sp("b"),
				QuestionOptionC:       sp("c"),
				QuestionOptionD:       sp("d"),
				QuestionCorrectOption: sp("E"),
			},
			wantErr: true,
		},
		{
			name: "MC opsi spasi doang dianggap kosong",
			q: QuestionModel{
				QuestionType:          QuestionTypeMC,
				QuestionOptionA:       sp("   "),
				QuestionOptionB:       sp("b"),
				QuestionOptionC:       sp("c"),
				QuestionOptionD:       sp("d"),
				QuestionCorrectOption: sp("A"),
			},
			wantErr: true,
		},
		{
			name: "TEXT tanpa kunci valid (dinilai manual)",
			q: QuestionModel{
				QuestionType: QuestionTypeText,
			},
			wantErr: false,
		},
		{
			name: "TEXT dengan kunci valid",
			q: QuestionModel{
				QuestionType:          QuestionTypeText,
				QuestionCorrectAnswer: sp("1/2"),
			},
			wantErr: false,
		},
		{
			name: "TEXT dengan correct_option ditolak",
			q: QuestionModel{
				QuestionType:          QuestionTypeText,
				QuestionCorrectOption: sp("A"),
			},
			wantErr: true,
		},
		{
			name:    "tipe tak dikenal",
			q:       QuestionModel{QuestionType: QuestionType("ESSAY")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.q.ValidateShape()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateShape() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidOptionKey(t *testing.T) {
	for _, k := range []string{"A", "B", "C", "D", "a", " c "} {
		if !ValidOptionKey(k) {
			t.Errorf("%q harus valid", k)
		}
	}
	for _, k := range []string{"", "E", "AB"} {
		if ValidOptionKey(k) {
			t.Errorf("%q harus tidak valid", k)
		}
	}
}
