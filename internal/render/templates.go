package render

// Template bodies live here as package-level constants so the full output
// surface is reviewable in one place. All of them are parsed once at init;
// a parse failure is a programming error and panics at startup.

const componentTemplate = `import * as React from 'react';

export type {{ .Name }}Variant = {{ variantUnion .Variants }};

export interface {{ .Name }}Props extends React.HTMLAttributes<HTMLElement> {
  variant?: {{ .Name }}Variant;
  disabled?: boolean;
  children?: React.ReactNode;
}

export function {{ .Name }}({ variant = '{{ index .Variants 0 }}', className, children, ...props }: {{ .Name }}Props) {
  const classes = ['{{ .ClassName }}', ` + "`{{ .ClassName }}--${variant}`" + `, className]
    .filter(Boolean)
    .join(' ');
  return (
{{ .Body }}
  );
}
`

// componentBodies maps each catalog component to the JSX it returns. The
// markup references the classes and props locals declared by the wrapper
// above. A spec whose name is missing here cannot be rendered.
var componentBodies = map[string]string{
	"Button": `    <button type="button" className={classes} {...props}>
      {children}
    </button>`,
	"Input": `    <input className={classes} {...props} />`,
	"Select": `    <select className={classes} {...props}>
      {children}
    </select>`,
	"Textarea": `    <textarea className={classes} {...props} />`,
	"Checkbox": `    <label className={classes}>
      <input type="checkbox" {...props} />
      {children}
    </label>`,
	"Radio": `    <label className={classes}>
      <input type="radio" {...props} />
      {children}
    </label>`,
	"Switch": `    <button type="button" role="switch" className={classes} {...props}>
      {children}
    </button>`,
	"Badge": `    <span className={classes} {...props}>
      {children}
    </span>`,
	"Tooltip": `    <span role="tooltip" className={classes} {...props}>
      {children}
    </span>`,
	"Modal": `    <div role="dialog" aria-modal="true" className={classes} {...props}>
      {children}
    </div>`,
	"Alert": `    <div role="alert" className={classes} {...props}>
      {children}
    </div>`,
	"Card": `    <div className={classes} {...props}>
      {children}
    </div>`,
	"Table": `    <table className={classes} {...props}>
      {children}
    </table>`,
	"Pagination": `    <nav aria-label="Pagination" className={classes} {...props}>
      {children}
    </nav>`,
	"Tabs": `    <div role="tablist" className={classes} {...props}>
      {children}
    </div>`,
	"Breadcrumb": `    <nav aria-label="Breadcrumb" className={classes} {...props}>
      {children}
    </nav>`,
	"Navigation": `    <nav className={classes} {...props}>
      {children}
    </nav>`,
	"Sidebar": `    <aside className={classes} {...props}>
      {children}
    </aside>`,
	"Header": `    <header className={classes} {...props}>
      {children}
    </header>`,
	"Footer": `    <footer className={classes} {...props}>
      {children}
    </footer>`,
	"Hero": `    <section className={classes} {...props}>
      {children}
    </section>`,
	"Progress": `    <div role="progressbar" className={classes} {...props}>
      {children}
    </div>`,
	"Skeleton": `    <div aria-hidden="true" className={classes} {...props} />`,
	"Accordion": `    <div className={classes} {...props}>
      {children}
    </div>`,
}

const storyTemplate = `import type { Meta, StoryObj } from '@storybook/react';
import { {{ .Name }} } from './{{ .Name }}';

const meta: Meta<typeof {{ .Name }}> = {
  title: 'Components/{{ .Name }}',
  component: {{ .Name }},
};

export default meta;
type Story = StoryObj<typeof {{ .Name }}>;
{{ range .Variants }}
export const {{ pascal . }}: Story = {
  args: { variant: '{{ . }}' },
};
{{ end -}}
`

const testTemplate = `import { render } from '@testing-library/react';
import { {{ .Name }} } from './{{ .Name }}';

describe('{{ .Name }}', () => {
  it('renders with the default variant class', () => {
    const { container } = render(<{{ .Name }} />);
    expect(container.firstChild).toHaveClass('{{ .ClassName }}--{{ index .Variants 0 }}');
  });

  it.each([{{ variantList .Variants }}])('applies the %s variant class', (variant) => {
    const { container } = render(<{{ .Name }} variant={variant} />);
    expect(container.firstChild).toHaveClass(` + "`{{ .ClassName }}--${variant}`" + `);
  });
});
`

const cssTemplate = `:root {
{{- range .Tokens.Colors }}
  --color-{{ .Name }}: {{ .Value }};
{{- end }}
{{- range .Tokens.Typography }}
  --font-{{ .Name }}-size: {{ .Size }};
  --font-{{ .Name }}-weight: {{ .Weight }};
  --font-{{ .Name }}-line-height: {{ .LineHeight }};
{{- end }}
{{- range .Tokens.Spacing }}
  --{{ .Name }}: {{ .Value }};
{{- end }}
{{- range .Tokens.Radii }}
  --{{ .Name }}: {{ .Value }};
{{- end }}
{{- range .Tokens.Shadows }}
  --{{ .Name }}: {{ .Value }};
{{- end }}
}
{{ if .Tokens.DarkColors }}
[data-theme='dark'] {
{{- range .Tokens.DarkColors }}
  --color-{{ .Name }}: {{ .Value }};
{{- end }}
}
{{ end -}}
`

const tailwindTemplate = `/** @type {import('tailwindcss').Config} */
module.exports = {
  content: ['./src/**/*.{ts,tsx}'],
  theme: {
    extend: {
      colors: {
{{- range $role, $shades := .ColorGroups }}
        {{ $role }}: {
{{- range $shades }}
          '{{ .Shade }}': 'var(--color-{{ .Name }})',
{{- end }}
        },
{{- end }}
      },
      spacing: {
{{- range .Tokens.Spacing }}
        '{{ .Scale }}': 'var(--{{ .Name }})',
{{- end }}
      },
      borderRadius: {
{{- range .Tokens.Radii }}
        '{{ trimPrefix .Name "radius-" }}': 'var(--{{ .Name }})',
{{- end }}
      },
      boxShadow: {
{{- range .Tokens.Shadows }}
        '{{ trimPrefix .Name "shadow-" }}': 'var(--{{ .Name }})',
{{- end }}
      },
    },
  },
  plugins: [],
};
`

const indexTemplate = `{{ range .Inventory.Components -}}
export * from './{{ .Name }}';
{{ end -}}
`

const readmeTemplate = `# {{ .Title }}

Generated design system for: {{ .Brief.ProductIdea }}

## Principles

- Philosophy: {{ .Principles.Philosophy }}
- Density: {{ .Principles.Density }}
- Clarity {{ .Principles.Clarity }}/10, warmth {{ .Principles.Warmth }}/10, speed {{ .Principles.Speed }}/10

## Components

{{ range .Inventory.Components -}}
- **{{ .Name }}** ({{ .Category }}): {{ .Description }}
{{ end }}
## Usage

Import components from the package root and load ` + "`tokens.css`" + ` once at the
application entry point. Tailwind users can extend their config with the
included ` + "`tailwind.config.js`" + `.
`
