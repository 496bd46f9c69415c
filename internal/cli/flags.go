package cli

import (
	"strings"

	"github.com/alexanderramin/aiguide/internal/domain"
	"github.com/spf13/pflag"
)

// enumFlag is a pflag.Value restricted to the members of a string enum.
type enumFlag[T ~string] struct {
	value    T
	parse    func(string) (T, error)
	typeName string
}

var (
	_ pflag.Value = (*enumFlag[domain.TaskType])(nil)
	_ pflag.Value = (*enumFlag[domain.MarksStatus])(nil)
	_ pflag.Value = (*enumFlag[domain.ModuleRule])(nil)
)

func (f *enumFlag[T]) String() string { return string(f.value) }
func (f *enumFlag[T]) Type() string   { return f.typeName }

func (f *enumFlag[T]) Set(s string) error {
	v, err := f.parse(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return err
	}
	f.value = v
	return nil
}

func (f *enumFlag[T]) IsSet() bool { return f.value != "" }

func newTaskFlag() *enumFlag[domain.TaskType] {
	return &enumFlag[domain.TaskType]{parse: domain.ParseTaskType, typeName: "task"}
}

func newMarksFlag() *enumFlag[domain.MarksStatus] {
	return &enumFlag[domain.MarksStatus]{parse: domain.ParseMarksStatus, typeName: "marks"}
}

func newRuleFlag() *enumFlag[domain.ModuleRule] {
	return &enumFlag[domain.ModuleRule]{parse: domain.ParseModuleRule, typeName: "rule"}
}

// answerFlags are the three wizard questions as command-line flags.
type answerFlags struct {
	task  *enumFlag[domain.TaskType]
	marks *enumFlag[domain.MarksStatus]
	rule  *enumFlag[domain.ModuleRule]
}

func bindAnswerFlags(fs *pflag.FlagSet) *answerFlags {
	f := &answerFlags{task: newTaskFlag(), marks: newMarksFlag(), rule: newRuleFlag()}
	fs.Var(f.task, "task", "what you are working on: assignment, study or research")
	fs.Var(f.marks, "marks", "whether it counts for marks: yes, no or unsure")
	fs.Var(f.rule, "rule", "module AI rule when --marks=yes: full, limited, none or unknown")
	return f
}
