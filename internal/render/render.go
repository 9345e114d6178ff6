// Package render turns a selected inventory and token set into the files of
// a React component library. Rendering is pure text substitution from a
// static template catalog; no dynamic code runs and no file is written here.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/atelierlabs/atelier/internal/model"
	"github.com/atelierlabs/atelier/pkg/errors"
)

// Input is everything the renderer needs for one library.
type Input struct {
	// Name is the npm package name, kebab-case.
	Name       string
	Brief      model.Brief
	Principles model.Principles
	Tokens     model.Tokens
	Inventory  model.Inventory
}

var templateFuncs = template.FuncMap{
	"variantUnion": variantUnion,
	"variantList":  variantList,
	"pascal":       pascal,
	"trimPrefix":   strings.TrimPrefix,
}

var (
	componentTmpl = template.Must(template.New("component").Funcs(templateFuncs).Parse(componentTemplate))
	storyTmpl     = template.Must(template.New("story").Funcs(templateFuncs).Parse(storyTemplate))
	testTmpl      = template.Must(template.New("test").Funcs(templateFuncs).Parse(testTemplate))
	cssTmpl       = template.Must(template.New("css").Funcs(templateFuncs).Parse(cssTemplate))
	tailwindTmpl  = template.Must(template.New("tailwind").Funcs(templateFuncs).Parse(tailwindTemplate))
	indexTmpl     = template.Must(template.New("index").Funcs(templateFuncs).Parse(indexTemplate))
	readmeTmpl    = template.Must(template.New("readme").Funcs(templateFuncs).Parse(readmeTemplate))
)

// componentData is the view passed to the per-component templates.
type componentData struct {
	Name      string
	ClassName string
	Variants  []string
	Body      string
}

func newComponentData(spec model.ComponentSpec) componentData {
	return componentData{
		Name:      spec.Name,
		ClassName: "ds-" + strings.ToLower(spec.Name),
		Variants:  spec.Variants,
	}
}

// Component renders the TSX source for one catalog spec. Specs without a
// template body are rejected, never skipped.
func Component(spec model.ComponentSpec) (model.Artifact, error) {
	body, ok := componentBodies[spec.Name]
	if !ok {
		return model.Artifact{}, errors.NewUnsupportedComponentError(spec.Name, "component")
	}

	data := newComponentData(spec)
	data.Body = body

	content, err := execute(componentTmpl, data)
	if err != nil {
		return model.Artifact{}, err
	}
	return model.Artifact{
		Name:    spec.Name,
		Path:    fmt.Sprintf("src/%s/%s.tsx", spec.Name, spec.Name),
		Content: content,
	}, nil
}

// Story renders the Storybook CSF file for one spec.
func Story(spec model.ComponentSpec) (model.Artifact, error) {
	if _, ok := componentBodies[spec.Name]; !ok {
		return model.Artifact{}, errors.NewUnsupportedComponentError(spec.Name, "story")
	}

	content, err := execute(storyTmpl, newComponentData(spec))
	if err != nil {
		return model.Artifact{}, err
	}
	return model.Artifact{
		Name:    spec.Name,
		Path:    fmt.Sprintf("src/%s/%s.stories.tsx", spec.Name, spec.Name),
		Content: content,
	}, nil
}

// Test renders the testing-library test file for one spec.
func Test(spec model.ComponentSpec) (model.Artifact, error) {
	if _, ok := componentBodies[spec.Name]; !ok {
		return model.Artifact{}, errors.NewUnsupportedComponentError(spec.Name, "test")
	}

	content, err := execute(testTmpl, newComponentData(spec))
	if err != nil {
		return model.Artifact{}, err
	}
	return model.Artifact{
		Name:    spec.Name,
		Path:    fmt.Sprintf("src/%s/%s.test.tsx", spec.Name, spec.Name),
		Content: content,
	}, nil
}

// Library renders every artifact for the input: one TSX, story, and test
// file per selected component plus the shared library files.
func Library(in Input) (model.Library, error) {
	lib := model.Library{}

	for _, spec := range in.Inventory.Components {
		component, err := Component(spec)
		if err != nil {
			return model.Library{}, err
		}
		story, err := Story(spec)
		if err != nil {
			return model.Library{}, err
		}
		test, err := Test(spec)
		if err != nil {
			return model.Library{}, err
		}
		lib.Components = append(lib.Components, component)
		lib.Stories = append(lib.Stories, story)
		lib.Tests = append(lib.Tests, test)
	}

	css, err := execute(cssTmpl, in)
	if err != nil {
		return model.Library{}, err
	}
	lib.CSSVariables = css

	tailwind, err := executeTailwind(in)
	if err != nil {
		return model.Library{}, err
	}
	lib.TailwindConfig = tailwind

	pkg, err := packageJSON(in.Name)
	if err != nil {
		return model.Library{}, err
	}
	lib.PackageJSON = pkg

	figma, err := figmaTokens(in.Tokens)
	if err != nil {
		return model.Library{}, err
	}
	lib.FigmaTokens = figma

	index, err := execute(indexTmpl, in)
	if err != nil {
		return model.Library{}, err
	}
	lib.IndexFile = index

	readme, err := execute(readmeTmpl, readmeData{
		Title:      titleFromName(in.Name),
		Brief:      in.Brief,
		Principles: in.Principles,
		Inventory:  in.Inventory,
	})
	if err != nil {
		return model.Library{}, err
	}
	lib.Readme = readme

	return lib, nil
}

type readmeData struct {
	Title      string
	Brief      model.Brief
	Principles model.Principles
	Inventory  model.Inventory
}

// shadeRef links a tailwind shade key back to its CSS variable.
type shadeRef struct {
	Shade string
	Name  string
}

type tailwindData struct {
	Tokens      model.Tokens
	ColorGroups map[string][]shadeRef
}

func executeTailwind(in Input) (string, error) {
	groups := make(map[string][]shadeRef)
	for _, c := range in.Tokens.Colors {
		idx := strings.LastIndex(c.Name, "-")
		if idx < 0 {
			continue
		}
		role, shade := c.Name[:idx], c.Name[idx+1:]
		groups[role] = append(groups[role], shadeRef{Shade: shade, Name: c.Name})
	}
	return execute(tailwindTmpl, tailwindData{Tokens: in.Tokens, ColorGroups: groups})
}

// packageDoc mirrors the package.json layout; field order here is the order
// written to disk.
type packageDoc struct {
	Name             string            `json:"name"`
	Version          string            `json:"version"`
	Description      string            `json:"description"`
	Main             string            `json:"main"`
	Types            string            `json:"types"`
	Sideeffects      []string          `json:"sideEffects"`
	PeerDependencies map[string]string `json:"peerDependencies"`
	DevDependencies  map[string]string `json:"devDependencies"`
}

func packageJSON(name string) (string, error) {
	doc := packageDoc{
		Name:        name,
		Version:     "0.1.0",
		Description: "Generated design system component library.",
		Main:        "src/index.ts",
		Types:       "src/index.ts",
		Sideeffects: []string{"*.css"},
		PeerDependencies: map[string]string{
			"react":     ">=18",
			"react-dom": ">=18",
		},
		DevDependencies: map[string]string{
			"@storybook/react":       "^8.0.0",
			"@testing-library/react": "^15.0.0",
			"@types/react":           "^18.0.0",
			"typescript":             "^5.4.0",
			"tailwindcss":            "^3.4.0",
		},
	}
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", errors.NewRenderError("package.json", err)
	}
	return string(raw) + "\n", nil
}

// figmaTokens emits a Tokens Studio compatible document. Map keys marshal
// sorted, so output is deterministic.
func figmaTokens(tokens model.Tokens) (string, error) {
	colorSet := make(map[string]any, len(tokens.Colors))
	for _, c := range tokens.Colors {
		colorSet[c.Name] = map[string]string{"value": c.Value, "type": "color"}
	}
	spacingSet := make(map[string]any, len(tokens.Spacing))
	for _, s := range tokens.Spacing {
		spacingSet[s.Name] = map[string]string{"value": s.Value, "type": "spacing"}
	}
	radiusSet := make(map[string]any, len(tokens.Radii))
	for _, r := range tokens.Radii {
		radiusSet[r.Name] = map[string]string{"value": r.Value, "type": "borderRadius"}
	}
	shadowSet := make(map[string]any, len(tokens.Shadows))
	for _, s := range tokens.Shadows {
		shadowSet[s.Name] = map[string]string{"value": s.Value, "type": "boxShadow"}
	}
	typographySet := make(map[string]any, len(tokens.Typography))
	for _, t := range tokens.Typography {
		typographySet[t.Name] = map[string]any{
			"value": map[string]any{
				"fontFamily": t.Family,
				"fontSize":   t.Size,
				"fontWeight": t.Weight,
				"lineHeight": t.LineHeight,
			},
			"type": "typography",
		}
	}

	doc := map[string]any{
		"global": map[string]any{
			"color":        colorSet,
			"spacing":      spacingSet,
			"borderRadius": radiusSet,
			"boxShadow":    shadowSet,
			"typography":   typographySet,
		},
	}
	if len(tokens.DarkColors) > 0 {
		darkSet := make(map[string]any, len(tokens.DarkColors))
		for _, c := range tokens.DarkColors {
			darkSet[c.Name] = map[string]string{"value": c.Value, "type": "color"}
		}
		doc["dark"] = map[string]any{"color": darkSet}
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", errors.NewRenderError("figma-tokens.json", err)
	}
	return string(raw) + "\n", nil
}

func execute(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.NewRenderError(tmpl.Name(), err)
	}
	return buf.String(), nil
}

// variantUnion formats variants as a TypeScript union in spec order.
func variantUnion(variants []string) string {
	parts := make([]string, len(variants))
	for i, v := range variants {
		parts[i] = "'" + v + "'"
	}
	return strings.Join(parts, " | ")
}

// variantList formats variants as a quoted argument list.
func variantList(variants []string) string {
	parts := make([]string, len(variants))
	for i, v := range variants {
		parts[i] = "'" + v + "'"
	}
	return strings.Join(parts, ", ")
}

// pascal maps a kebab-case variant name to a PascalCase identifier.
func pascal(s string) string {
	parts := strings.Split(s, "-")
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

func titleFromName(name string) string {
	parts := strings.Split(name, "-")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		out = append(out, strings.ToUpper(p[:1])+p[1:])
	}
	return strings.Join(out, " ")
}
