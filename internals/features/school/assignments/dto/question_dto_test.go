package dto

import (
	"testing"

	amodel "novaeclass_backend/internals/features/school/assignments/model"
)

func TestUpdateQuestionRequestPartialApply(t *testing.T) {
	optA, optB, optC, optD := "1/2", "1/3", "1/4", "2/3"
	key := "A"
	m := amodel.QuestionModel{
		QuestionText:          "Berapa setengah dari satu?",
		QuestionType:          amodel.QuestionTypeMC,
		QuestionOptionA:       &optA,
		QuestionOptionB:       &optB,
		QuestionOptionC:       &optC,
		QuestionOptionD:       &optD,
		QuestionCorrectOption: &key,
	}

	newText := "Berapa hasil 1 dibagi 2?"
	newKey := "b"
	req := UpdateQuestionRequest{
		QuestionText:          &newText,
		QuestionCorrectOption: &newKey,
	}
	req.ApplyToModel(&m)

	if m.QuestionText != newText {
		t.Errorf("text = %q, want %q", m.QuestionText, newText)
	}
	if m.QuestionCorrectOption == nil || *m.QuestionCorrectOption != "B" {
		t.Errorf("correct_option = %v, want B (dinormalisasi kapital)", m.QuestionCorrectOption)
	}
	// field yang tidak dikirim tidak berubah
	if m.QuestionOptionA != &optA || *m.QuestionOptionA != "1/2" {
		t.Error("option_a tidak boleh berubah")
	}
	if err := m.ValidateShape(); err != nil {
		t.Errorf("hasil patch harus tetap valid: %v", err)
	}
}

func TestUpdateQuestionRequestKeepsShapeValid(t *testing.T) {
	answer := "lima"
	m := amodel.QuestionModel{
		QuestionText:          "Tulis angka 5 dengan huruf",
		QuestionType:          amodel.QuestionTypeText,
		QuestionCorrectAnswer: &answer,
	}

	badKey := "C"
	req := UpdateQuestionRequest{QuestionCorrectOption: &badKey}
	req.ApplyToModel(&m)

	// soal TEXT dengan correct_option harus ditolak ValidateShape,
	// handler PATCH memakai ini sebelum menyimpan.
	if err := m.ValidateShape(); err == nil {
		t.Error("ValidateShape harus menolak TEXT dengan correct_option")
	}
}
