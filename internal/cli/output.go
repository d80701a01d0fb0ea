package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case SpinResult:
		o.printSpinResult(v)
	case ScoreResult:
		o.printScoreResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		o.printJSON(data)
	}
}

// SpinResult response type (matches API)
type SpinResult struct {
	Result  int    `json:"result"`
	Message string `json:"message,omitempty"`
}

// ScoreResult response type
type ScoreResult struct {
	NewScore int `json:"new_score"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printSpinResult(r SpinResult) {
	fmt.Printf("Result: %d\n", r.Result)
	if r.Message != "" {
		fmt.Printf("Message: %s\n", r.Message)
	}
}

func (o *Output) printScoreResult(r ScoreResult) {
	fmt.Printf("New score: %d\n", r.NewScore)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
