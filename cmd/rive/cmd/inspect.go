package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/itchyny/gojq"

	"github.com/go-drift/rive/pkg/rive"
)

func init() {
	RegisterCommand(&Command{
		Name:  "inspect",
		Short: "Print a JSON summary of a file",
		Long: `Print the artboards, animations, state machines, events, text runs,
view models and enums of a file as JSON.

--jq filters the summary with a jq expression; each result is printed
on its own. --artboard limits the summary to one artboard.`,
		Usage: "rive inspect FILE [--jq EXPR] [--artboard NAME]",
		Run:   runInspect,
	})
}

type fileSummary struct {
	ABI        uint32             `json:"abi"`
	Backend    string             `json:"backend"`
	HasAudio   bool               `json:"hasAudio"`
	Artboards  []artboardSummary  `json:"artboards"`
	ViewModels []viewModelSummary `json:"viewModels"`
	Enums      []rive.DataEnum    `json:"enums"`
}

type artboardSummary struct {
	Name          string                `json:"name"`
	Width         float32               `json:"width"`
	Height        float32               `json:"height"`
	Animations    []animationSummary    `json:"animations"`
	StateMachines []stateMachineSummary `json:"stateMachines"`
	Events        []rive.Event          `json:"events"`
	TextRuns      []textRunSummary      `json:"textRuns"`
}

type animationSummary struct {
	Name     string  `json:"name"`
	FPS      uint32  `json:"fps"`
	Duration uint32  `json:"duration"`
	Seconds  float32 `json:"seconds"`
	Loop     string  `json:"loop"`
}

type stateMachineSummary struct {
	Name   string         `json:"name"`
	Inputs []fieldSummary `json:"inputs"`
}

type textRunSummary struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

type viewModelSummary struct {
	Name       string         `json:"name"`
	Properties []fieldSummary `json:"properties"`
	Instances  []string       `json:"instances"`
}

// fieldSummary is a named, typed member: an input or a property.
type fieldSummary struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func runInspect(args []string) error {
	const usage = "rive inspect FILE [--jq EXPR] [--artboard NAME]"
	p, err := flagSpec{valued: []string{"--jq", "--artboard"}}.parse(args)
	if err != nil {
		return err
	}
	path, err := p.file(usage)
	if err != nil {
		return err
	}

	var query *gojq.Query
	if expr := p.str("--jq", ""); expr != "" {
		if query, err = gojq.Parse(expr); err != nil {
			return fmt.Errorf("--jq: %w", err)
		}
	}

	doc, err := openDocument(path)
	if err != nil {
		return err
	}
	defer doc.Close()

	sum, err := summarize(doc, p.str("--artboard", ""))
	if err != nil {
		return err
	}
	if query == nil {
		return printJSON(sum)
	}
	return runQuery(context.Background(), query, sum)
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, string(out))
	return nil
}

// runQuery feeds the summary to query as plain JSON values and prints
// every result.
func runQuery(ctx context.Context, query *gojq.Query, sum *fileSummary) error {
	raw, err := json.Marshal(sum)
	if err != nil {
		return err
	}
	var input any
	if err := json.Unmarshal(raw, &input); err != nil {
		return err
	}

	iter := query.RunWithContext(ctx, input)
	for {
		v, ok := iter.Next()
		if !ok {
			return nil
		}
		if err, ok := v.(error); ok {
			return fmt.Errorf("--jq: %w", err)
		}
		if err := printJSON(v); err != nil {
			return err
		}
	}
}

func summarize(doc *document, only string) (*fileSummary, error) {
	sum := &fileSummary{
		ABI:        doc.rt.ABIVersion(),
		Backend:    doc.backend,
		HasAudio:   doc.file.HasAudio(),
		Artboards:  []artboardSummary{},
		ViewModels: []viewModelSummary{},
	}

	var err error
	if sum.Enums, err = doc.file.Enums(); err != nil {
		return nil, err
	}
	if sum.Enums == nil {
		sum.Enums = []rive.DataEnum{}
	}

	if only != "" {
		a, err := doc.file.Artboard(only)
		if err != nil {
			return nil, fmt.Errorf("artboard %q: %w", only, err)
		}
		s, err := summarizeArtboard(a)
		a.Release()
		if err != nil {
			return nil, err
		}
		sum.Artboards = append(sum.Artboards, s)
	} else {
		for i := range doc.file.ArtboardCount() {
			a, err := doc.file.ArtboardAt(i)
			if err != nil {
				return nil, err
			}
			s, err := summarizeArtboard(a)
			a.Release()
			if err != nil {
				return nil, err
			}
			sum.Artboards = append(sum.Artboards, s)
		}
	}

	for i := range doc.file.ViewModelCount() {
		vm, err := doc.file.ViewModelAt(i)
		if err != nil {
			return nil, err
		}
		s, err := summarizeViewModel(vm)
		vm.Release()
		if err != nil {
			return nil, err
		}
		sum.ViewModels = append(sum.ViewModels, s)
	}
	return sum, nil
}

func summarizeArtboard(a *rive.Artboard) (artboardSummary, error) {
	s := artboardSummary{
		Name:          a.Name(),
		Width:         a.Width(),
		Height:        a.Height(),
		Animations:    []animationSummary{},
		StateMachines: []stateMachineSummary{},
		TextRuns:      []textRunSummary{},
	}

	for i := range a.AnimationCount() {
		anim, err := a.AnimationAt(i)
		if err != nil {
			return s, err
		}
		s.Animations = append(s.Animations, animationSummary{
			Name:     anim.Name(),
			FPS:      anim.FPS(),
			Duration: anim.Duration(),
			Seconds:  anim.Seconds(),
			Loop:     anim.Loop().String(),
		})
	}

	for i := range a.StateMachineCount() {
		sm, err := a.StateMachineAt(i)
		if err != nil {
			return s, err
		}
		// Inputs are only listed by instances
		inst, err := sm.NewInstance(a)
		if err != nil {
			return s, err
		}
		inputs, err := inst.Inputs()
		if err != nil {
			inst.Destroy()
			return s, err
		}
		sms := stateMachineSummary{Name: sm.Name(), Inputs: []fieldSummary{}}
		for _, in := range inputs {
			sms.Inputs = append(sms.Inputs, fieldSummary{Name: in.Name(), Type: in.Type().String()})
		}
		inst.Destroy()
		s.StateMachines = append(s.StateMachines, sms)
	}

	events, err := a.Events()
	if err != nil {
		return s, err
	}
	s.Events = append([]rive.Event{}, events...)

	for i := range a.TextRunCount() {
		name, err := a.TextRunNameAt(i)
		if err != nil {
			return s, err
		}
		text, err := a.TextRunTextAt(i)
		if err != nil {
			return s, err
		}
		s.TextRuns = append(s.TextRuns, textRunSummary{Name: name, Text: text})
	}
	return s, nil
}

func summarizeViewModel(vm *rive.ViewModel) (viewModelSummary, error) {
	s := viewModelSummary{Name: vm.Name(), Properties: []fieldSummary{}, Instances: []string{}}
	props, err := vm.Properties()
	if err != nil {
		return s, err
	}
	for _, p := range props {
		s.Properties = append(s.Properties, fieldSummary{Name: p.Name, Type: p.Type.String()})
	}
	for i := range vm.InstanceCount() {
		name, err := vm.InstanceNameAt(i)
		if err != nil {
			return s, err
		}
		s.Instances = append(s.Instances, name)
	}
	return s, nil
}
