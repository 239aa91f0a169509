package service

import (
	"math"
	"testing"

	"github.com/google/uuid"

	assignmentModel "novaeclass_backend/internals/features/school/assignments/model"
	idto "novaeclass_backend/internals/features/school/instances/dto"
)

func strPtr(s string) *string { return &s }

func mcQuestion(correct string) assignmentModel.QuestionModel {
	return assignmentModel.QuestionModel{
		QuestionID:            uuid.New(),
		QuestionType:          assignmentModel.QuestionTypeMC,
		QuestionOptionA:       strPtr("opsi a"),
		QuestionOptionB:       strPtr("opsi b"),
		QuestionOptionC:       strPtr("opsi c"),
		QuestionOptionD:       strPtr("opsi d"),
		QuestionCorrectOption: strPtr(correct),
	}
}

func textQuestion(correctAnswer *string) assignmentModel.QuestionModel {
	return assignmentModel.QuestionModel{
		QuestionID:            uuid.New(),
		QuestionType:          assignmentModel.QuestionTypeText,
		QuestionCorrectAnswer: correctAnswer,
	}
}

func optionAnswer(opt string) idto.AnswerValue { return idto.AnswerValue{Option: strPtr(opt)} }
func textAnswer(text string) idto.AnswerValue  { return idto.AnswerValue{Text: strPtr(text)} }

func TestGradeSubmissionScoring(t *testing.T) {
	q1 := mcQuestion("A")
	q2 := mcQuestion("B")
	q3 := mcQuestion("C")
	q4 := textQuestion(strPtr("1/2"))

	tests := []struct {
		name        string
		questions   []assignmentModel.QuestionModel
		answers     map[uuid.UUID]idto.AnswerValue
		wantCorrect int
		wantTotal   int
		wantScore   float64
	}{
		{
			name:      "kuis pecahan: 3 dari 4 benar = 75",
			questions: []assignmentModel.QuestionModel{q1, q2, q3, q4},
			answers: map[uuid.UUID]idto.AnswerValue{
				q1.QuestionID: optionAnswer("A"),
				q2.QuestionID: optionAnswer("B"),
				q3.QuestionID: optionAnswer("D"), // salah
				q4.QuestionID: textAnswer("1/2"),
			},
			wantCorrect: 3,
			wantTotal:   4,
			wantScore:   75,
		},
		{
			name:        "tanpa soal = skor 0",
			questions:   nil,
			answers:     map[uuid.UUID]idto.AnswerValue{},
			wantCorrect: 0,
			wantTotal:   0,
			wantScore:   0,
		},
		{
			name:      "semua salah = 0 (retake tetap memungkinkan lewat skor)",
			questions: []assignmentModel.QuestionModel{q1, q2},
			answers: map[uuid.UUID]idto.AnswerValue{
				q1.QuestionID: optionAnswer("B"),
				q2.QuestionID: optionAnswer("A"),
			},
			wantCorrect: 0,
			wantTotal:   2,
			wantScore:   0,
		},
		{
			name:      "soal tidak dijawab dihitung salah",
			questions: []assignmentModel.QuestionModel{q1, q2},
			answers: map[uuid.UUID]idto.AnswerValue{
				q1.QuestionID: optionAnswer("A"),
			},
			wantCorrect: 1,
			wantTotal:   2,
			wantScore:   50,
		},
		{
			name:      "jawaban untuk soal tak dikenal diabaikan",
			questions: []assignmentModel.QuestionModel{q1},
			answers: map[uuid.UUID]idto.AnswerValue{
				q1.QuestionID: optionAnswer("A"),
				uuid.New():    optionAnswer("B"),
				uuid.New():    textAnswer("nyasar"),
			},
			wantCorrect: 1,
			wantTotal:   1,
			wantScore:   100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, _ := GradeSubmission(tt.questions, tt.answers)
			if res.Correct != tt.wantCorrect {
				t.Errorf("Correct = %d, want %d", res.Correct, tt.wantCorrect)
			}
			if res.Total != tt.wantTotal {
				t.Errorf("Total = %d, want %d", res.Total, tt.wantTotal)
			}
			if math.Abs(res.Score-tt.wantScore) > 1e-9 {
				t.Errorf("Score = %v, want %v", res.Score, tt.wantScore)
			}
		})
	}
}

func TestGradeSubmissionTextMatching(t *testing.T) {
	q := textQuestion(strPtr("Photosynthesis"))

	tests := []struct {
		name    string
		given   string
		correct bool
	}{
		{"persis sama", "Photosynthesis", true},
		{"case-insensitive", "photosynthesis", true},
		{"trim spasi", "  Photosynthesis  ", true},
		{"beda isi", "Respiration", false},
		{"kosong", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, _ := GradeSubmission(
				[]assignmentModel.QuestionModel{q},
				map[uuid.UUID]idto.AnswerValue{q.QuestionID: textAnswer(tt.given)},
			)
			got := res.Correct == 1
			if got != tt.correct {
				t.Errorf("benar = %v, want %v", got, tt.correct)
			}
		})
	}
}

func TestGradeSubmissionTextWithoutKeyNeverCorrect(t *testing.T) {
	q := textQuestion(nil) // dinilai manual

	res, normalized := GradeSubmission(
		[]assignmentModel.QuestionModel{q},
		map[uuid.UUID]idto.AnswerValue{q.QuestionID: textAnswer("jawaban bebas")},
	)
	if res.Correct != 0 {
		t.Errorf("Correct = %d, want 0", res.Correct)
	}
	if res.Total != 1 {
		t.Errorf("Total = %d, want 1 (tetap masuk pembagi)", res.Total)
	}
	if len(normalized) != 1 || normalized[0].TextAnswer == nil || *normalized[0].TextAnswer != "jawaban bebas" {
		t.Errorf("teks jawaban harus tetap tersimpan: %+v", normalized)
	}
}

func TestGradeSubmissionOptionCaseInsensitive(t *testing.T) {
	q := mcQuestion("C")

	res, normalized := GradeSubmission(
		[]assignmentModel.QuestionModel{q},
		map[uuid.UUID]idto.AnswerValue{q.QuestionID: optionAnswer("c")},
	)
	if res.Correct != 1 {
		t.Errorf("opsi lowercase harus dinormalisasi, Correct = %d", res.Correct)
	}
	if normalized[0].SelectedOption == nil || *normalized[0].SelectedOption != "C" {
		t.Errorf("SelectedOption = %v, want C", normalized[0].SelectedOption)
	}
}
