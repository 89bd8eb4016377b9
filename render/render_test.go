package render

import (
	"strings"
	"testing"

	"github.com/joshuafuller/dog/internal/dispatch"
	"github.com/joshuafuller/dog/internal/message"
	"github.com/joshuafuller/dog/internal/rrtypes"
	"github.com/joshuafuller/dog/internal/wire"
)

func outcomeWithAnswer() dispatch.Outcome {
	return dispatch.Outcome{
		Response: message.Message{
			Answers: []message.ResourceRecord{
				{Name: wire.Name{Labels: [][]byte{[]byte("example"), []byte("com")}}, RType: rrtypes.TypeA, TTL: 300,
					Record: rrtypes.A{Addr: [4]byte{1, 2, 3, 4}}},
			},
		},
	}
}

func TestShort_NoAnswersIsNotPrintable(t *testing.T) {
	_, printable := Short{}.Render(dispatch.Outcome{})
	if printable {
		t.Error("Render() printable = true, want false for zero answers")
	}
}

func TestShort_RendersAnswerData(t *testing.T) {
	text, printable := Short{}.Render(outcomeWithAnswer())
	if !printable {
		t.Fatal("Render() printable = false, want true")
	}
	if text != "1.2.3.4" {
		t.Errorf("Render() = %q, want %q", text, "1.2.3.4")
	}
}

func TestShort_ErrorIsNotPrintable(t *testing.T) {
	_, printable := Short{}.Render(dispatch.Outcome{Err: errBoom{}})
	if printable {
		t.Error("Render() printable = true, want false on error")
	}
}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func TestJSON_RendersAnswers(t *testing.T) {
	text, printable := JSON{}.Render(outcomeWithAnswer())
	if !printable {
		t.Fatal("Render() printable = false, want true")
	}
	if !strings.Contains(text, "1.2.3.4") {
		t.Errorf("Render() = %q, want it to contain %q", text, "1.2.3.4")
	}
}

func TestTable_IncludesQuestionAndAnswerSections(t *testing.T) {
	o := outcomeWithAnswer()
	o.Response.Questions = []message.Question{
		{Name: wire.Name{Labels: [][]byte{[]byte("example"), []byte("com")}}, QType: rrtypes.TypeA, QClass: 1},
	}
	text, printable := Table{}.Render(o)
	if !printable {
		t.Fatal("Render() printable = false, want true")
	}
	if !strings.Contains(text, "QUESTION") || !strings.Contains(text, "ANSWER") {
		t.Errorf("Render() = %q, want it to contain QUESTION and ANSWER sections", text)
	}
}
