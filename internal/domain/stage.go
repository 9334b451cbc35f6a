package domain

import "fmt"

// Stage is a git hook stage a hook can run in
type Stage string

const (
	StageCommitMsg        Stage = "commit-msg"
	StageManual           Stage = "manual"
	StagePostCheckout     Stage = "post-checkout"
	StagePostCommit       Stage = "post-commit"
	StagePostMerge        Stage = "post-merge"
	StagePostRewrite      Stage = "post-rewrite"
	StagePreCommit        Stage = "pre-commit"
	StagePreMergeCommit   Stage = "pre-merge-commit"
	StagePrePush          Stage = "pre-push"
	StagePrepareCommitMsg Stage = "prepare-commit-msg"
	StagePreRebase        Stage = "pre-rebase"
)

// AllStages lists every stage in git invocation order
var AllStages = []Stage{
	StagePreCommit,
	StagePreMergeCommit,
	StagePrePush,
	StagePrepareCommitMsg,
	StageCommitMsg,
	StagePostCheckout,
	StagePostCommit,
	StagePostMerge,
	StagePostRewrite,
	StagePreRebase,
	StageManual,
}

// legacyStages maps old stage names to their current names
var legacyStages = map[string]Stage{
	"commit":       StagePreCommit,
	"merge-commit": StagePreMergeCommit,
	"push":         StagePrePush,
}

// NormalizeStage resolves a stage name, accepting legacy aliases
func NormalizeStage(name string) (Stage, error) {
	if s, ok := legacyStages[name]; ok {
		return s, nil
	}
	for _, s := range AllStages {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown stage '%s'", name)
}

// IsValidStage reports whether s is a known stage
func IsValidStage(s Stage) bool {
	for _, known := range AllStages {
		if s == known {
			return true
		}
	}
	return false
}

// HookTypeStages maps installable git hook types to the stage they trigger.
// Manual is not a git hook.
func HookTypeStages() map[string]Stage {
	m := make(map[string]Stage, len(AllStages)-1)
	for _, s := range AllStages {
		if s == StageManual {
			continue
		}
		m[string(s)] = s
	}
	return m
}
