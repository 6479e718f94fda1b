package catalog

import "fmt"

// Phase is one fixed stage of the development lifecycle. Phases are iterated
// in numeric code order; no phase depends on another's output.
type Phase struct {
	Code string // three-digit ordering key, e.g. "030"
	Name string // folder display name, e.g. "investigation"
}

// FolderName returns the phase folder name, "<code>.<name>".
func (p Phase) FolderName() string {
	return fmt.Sprintf("%s.%s", p.Code, p.Name)
}

// Deliverable describes one main artifact produced directly under a phase
// folder. Source deliverables are empty code stubs: they carry no title and
// are never copied into review cycles.
type Deliverable struct {
	Stem     string
	TitleKey string
	Source   bool
}

// ReviewKind names a review subfolder under a phase's results folder.
type ReviewKind string

const (
	ReviewInternal ReviewKind = "internal-review"
	ReviewExternal ReviewKind = "external-review"
)

// Cycle is one dated round of review. DaysAgo is the offset subtracted from
// the run date to name the cycle's folder.
type Cycle struct {
	Kind    ReviewKind
	Round   int
	DaysAgo int
	Label   string // filename component, e.g. "internal_round1"
}

// ResultsFolder is the subfolder holding both review trees in every phase.
const ResultsFolder = "results"

// Title lookup keys for the per-cycle review artifacts.
const (
	ChecklistTitleKey = "review_checklist"
	MinutesTitleKey   = "review_minutes"
)

var phases = []Phase{
	{Code: "030", Name: "investigation"},
	{Code: "040", Name: "design"},
	{Code: "050", Name: "manufacturing"},
	{Code: "060", Name: "unit-test-creation"},
	{Code: "070", Name: "unit-test-execution"},
	{Code: "080", Name: "system-test-creation"},
	{Code: "090", Name: "system-test-execution"},
}

var deliverables = map[string][]Deliverable{
	"030": {{Stem: "investigation_report", TitleKey: "research"}},
	"040": {{Stem: "functional_design", TitleKey: "sys_design"}},
	"050": {{Stem: "xxx", Source: true}},
	"060": {{Stem: "unit_test_spec", TitleKey: "unit_test_doc"}},
	"070": {{Stem: "unit_test_results", TitleKey: "unit_test_rst"}},
	"080": {{Stem: "system_test_spec", TitleKey: "sys_test_doc"}},
	"090": {
		{Stem: "system_test_results", TitleKey: "sys_test_rst"},
		{Stem: "test_result_report", TitleKey: "test_rst_report"},
	},
}

// externalReview lists the phases that hold dated external review cycles.
// Every phase still gets an external-review folder; for the rest it stays empty.
var externalReview = map[string]bool{
	"030": true,
	"040": true,
	"080": true,
	"090": true,
}

// Phases returns the phase catalog in iteration order.
func Phases() []Phase {
	out := make([]Phase, len(phases))
	copy(out, phases)
	return out
}

// Deliverables returns the main-deliverable specs for a phase code.
func Deliverables(code string) []Deliverable {
	specs := deliverables[code]
	out := make([]Deliverable, len(specs))
	copy(out, specs)
	return out
}

// Cycles returns the review cycles for a phase code in creation order:
// internal rounds first, then external. Every phase has internal round 1;
// only the investigation phase has second rounds, and only the phases in
// the external set have external rounds at all.
func Cycles(code string) []Cycle {
	cycles := []Cycle{
		{Kind: ReviewInternal, Round: 1, DaysAgo: 7, Label: "internal_round1"},
	}
	if code == "030" {
		cycles = append(cycles, Cycle{Kind: ReviewInternal, Round: 2, DaysAgo: 5, Label: "internal_round2"})
	}
	if externalReview[code] {
		cycles = append(cycles, Cycle{Kind: ReviewExternal, Round: 1, DaysAgo: 3, Label: "external_round1"})
		if code == "030" {
			cycles = append(cycles, Cycle{Kind: ReviewExternal, Round: 2, DaysAgo: 1, Label: "external_round2"})
		}
	}
	return cycles
}

// HasExternalReview reports whether a phase holds dated external review cycles.
func HasExternalReview(code string) bool {
	return externalReview[code]
}

// Variant returns the altered-stem document written into a cycle in place of
// the phase's recorded deliverables, or nil for the normal copy behavior.
// The one defined exception: the investigation phase's second external cycle
// writes a single "investigation_b" document, exercising downstream
// consumers that must associate variant-named files with their phase.
func Variant(code string, c Cycle) *Deliverable {
	if code == "030" && c.Kind == ReviewExternal && c.Round == 2 {
		return &Deliverable{Stem: "investigation_b", TitleKey: "research"}
	}
	return nil
}
