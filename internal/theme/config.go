package theme

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// LoadFile reads an optional HCL theme file and overlays it on the default
// theme. The file has a single dossier block:
//
//	dossier {
//	  output = "reports/analysis.pdf"
//	  scale  = 1.5
//
//	  palette {
//	    blue  = "#60a5fa"
//	    amber = "#fbbf24"
//	  }
//	}
//
// Unset attributes keep their defaults, so an empty file is equivalent to no
// file at all.
func LoadFile(path string) (*Theme, error) {
	th := Default()

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("cannot read theme file: %w", err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("HCL parse errors: %s", diags.Error())
	}

	content, _, diags := file.Body.PartialContent(&hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{
			{Type: "dossier"},
		},
	})
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse body: %s", diags.Error())
	}

	for _, block := range content.Blocks {
		if block.Type != "dossier" {
			continue
		}
		if err := applyDossierBlock(th, block.Body); err != nil {
			return nil, err
		}
	}

	return th, nil
}

// applyDossierBlock overlays one dossier block onto the theme.
func applyDossierBlock(th *Theme, body hcl.Body) error {
	content, _, diags := body.PartialContent(&hcl.BodySchema{
		Attributes: []hcl.AttributeSchema{
			{Name: "output"},
			{Name: "scale"},
		},
		Blocks: []hcl.BlockHeaderSchema{
			{Type: "palette"},
		},
	})
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse dossier block: %s", diags.Error())
	}

	if attr, ok := content.Attributes["output"]; ok {
		v, err := stringValue(attr)
		if err != nil {
			return err
		}
		th.Output = v
	}

	if attr, ok := content.Attributes["scale"]; ok {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return fmt.Errorf("failed to evaluate scale: %s", diags.Error())
		}
		if val.Type() != cty.Number {
			return fmt.Errorf("scale must be a number")
		}
		f, _ := val.AsBigFloat().Float64()
		if f <= 0 {
			return fmt.Errorf("scale must be positive, got %v", f)
		}
		th.Scale = f
	}

	for _, block := range content.Blocks {
		if block.Type != "palette" {
			continue
		}
		if err := applyPaletteBlock(&th.Palette, block.Body); err != nil {
			return err
		}
	}

	return nil
}

// applyPaletteBlock overlays palette color overrides. Every attribute must
// name a known palette entry and hold a valid hex color.
func applyPaletteBlock(p *Palette, body hcl.Body) error {
	slots := map[string]*string{
		"bg_dark":  &p.BGDark,
		"bg_panel": &p.BGPanel,
		"blue":     &p.Blue,
		"amber":    &p.Amber,
		"red":      &p.Red,
		"green":    &p.Green,
		"purple":   &p.Purple,
		"cyan":     &p.Cyan,
		"pink":     &p.Pink,
		"slate":    &p.Slate,
		"white":    &p.White,
		"body":     &p.Body,
		"grid":     &p.Grid,
		"row_alt":  &p.RowAlt,
	}

	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse palette block: %s", diags.Error())
	}

	for name, attr := range attrs {
		slot, ok := slots[name]
		if !ok {
			return fmt.Errorf("unknown palette entry %q", name)
		}
		v, err := stringValue(attr)
		if err != nil {
			return err
		}
		if _, err := ParseHex(v); err != nil {
			return fmt.Errorf("palette entry %q: %w", name, err)
		}
		*slot = v
	}

	return nil
}

func stringValue(attr *hcl.Attribute) (string, error) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return "", fmt.Errorf("failed to evaluate %s: %s", attr.Name, diags.Error())
	}
	if val.Type() != cty.String {
		return "", fmt.Errorf("%s must be a string", attr.Name)
	}
	return val.AsString(), nil
}
