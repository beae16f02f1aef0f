// Package symboldump renders a symbols.Table as JSON (and, via Go,
// YAML) for `pl0c symbols`, building the document incrementally with
// sjson rather than constructing and marshalling a parallel struct
// tree.
package symboldump

import (
	"fmt"

	"github.com/cwbudde/pl0c/internal/symbols"
	"github.com/tidwall/sjson"
)

// JSON renders every procedure in t — name, index, frame size,
// constants, variables, and nested procedure indices — as a JSON
// document.
func JSON(t *symbols.Table) (string, error) {
	doc := "{}"
	var err error

	for _, proc := range t.Procedures() {
		path := fmt.Sprintf("procedures.%d", proc.Index)

		doc, err = sjson.Set(doc, path+".name", proc.Name)
		if err != nil {
			return "", err
		}
		doc, err = sjson.Set(doc, path+".index", proc.Index)
		if err != nil {
			return "", err
		}
		doc, err = sjson.Set(doc, path+".frameSize", proc.FrameSize())
		if err != nil {
			return "", err
		}
		if proc.Parent != nil {
			doc, err = sjson.Set(doc, path+".parent", proc.Parent.Index)
			if err != nil {
				return "", err
			}
		}

		for i, c := range proc.Constants {
			cp := fmt.Sprintf("%s.constants.%d", path, i)
			if doc, err = sjson.Set(doc, cp+".name", c.Name); err != nil {
				return "", err
			}
			if doc, err = sjson.Set(doc, cp+".value", c.Value); err != nil {
				return "", err
			}
			if doc, err = sjson.Set(doc, cp+".poolIndex", c.Index); err != nil {
				return "", err
			}
		}

		for i, v := range proc.Variables {
			vp := fmt.Sprintf("%s.variables.%d", path, i)
			if doc, err = sjson.Set(doc, vp+".name", v.Name); err != nil {
				return "", err
			}
			if doc, err = sjson.Set(doc, vp+".offset", v.AddressOffset); err != nil {
				return "", err
			}
			if doc, err = sjson.Set(doc, vp+".parameter", v.IsParameter); err != nil {
				return "", err
			}
			if v.ArrayLength > 0 {
				if doc, err = sjson.Set(doc, vp+".arrayLength", v.ArrayLength); err != nil {
					return "", err
				}
			}
		}

		for i, cp := range proc.Procedures {
			if doc, err = sjson.Set(doc, fmt.Sprintf("%s.children.%d", path, i), cp.Index); err != nil {
				return "", err
			}
		}
	}

	pool := t.ConstantPool()
	for i, c := range pool {
		if doc, err = sjson.Set(doc, fmt.Sprintf("constantPool.%d", i), c.Value); err != nil {
			return "", err
		}
	}

	return doc, nil
}
