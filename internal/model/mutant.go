package model

// Mutant is a single localized source-text substitution representing a
// plausible fault in a code change.
type Mutant struct {
	ID            string        `yaml:"id"`
	Description   string        `yaml:"description,omitempty"`
	TargetFile    Path          `yaml:"target_file"`
	OriginalCode  string        `yaml:"original_code"`
	MutatedCode   string        `yaml:"mutated_code"`
	Lines         *LineRange    `yaml:"lines,omitempty"`
	Accessibility Accessibility `yaml:"accessibility,omitempty"`
}

// TestStage is the position of a generated test on the retry/escalation ladder.
type TestStage string

const (
	StageGenerated    TestStage = "generated"
	StageCompileRetry TestStage = "compile_retry"
	StageEscalated    TestStage = "escalated"
	StageRecovered    TestStage = "recovered"
	StageTerminal     TestStage = "terminal"
)

// GeneratedTest is a compiled (or not) candidate catching test for one mutant.
type GeneratedTest struct {
	Code               string    `yaml:"code"`
	CompilationSuccess bool      `yaml:"compiled"`
	Attempts           int       `yaml:"attempts,omitempty"`
	Stage              TestStage `yaml:"stage,omitempty"`
	Mutant             Mutant    `yaml:"-"`
}

// BatchItem pairs a mutant with its (optional) generated test.
type BatchItem struct {
	Mutant Mutant         `yaml:"mutant"`
	Test   *GeneratedTest `yaml:"test,omitempty"`
}

// Batch is the job handed to the pipeline: a repository and the pairs to verify.
type Batch struct {
	RepoRoot Path        `yaml:"repo_root"`
	Items    []BatchItem `yaml:"items"`
}

// Rejection records why the gate refused a mutant.
type Rejection struct {
	Mutant Mutant `yaml:"mutant"`
	Reason string `yaml:"reason"`
}

// GateReport is the ordered outcome of mutant validation and prioritisation.
type GateReport struct {
	Accepted []Mutant
	Rejected []Rejection
}
