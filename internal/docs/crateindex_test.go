package docs

import (
	"strings"
	"testing"
)

const indexCrateJSON = `{
	"root": 0,
	"format_version": 37,
	"external_crates": {},
	"paths": {},
	"index": {
		"0": {"id": 0, "crate_id": 0, "name": "mycrate", "visibility": "public", "docs": "Does useful things.", "inner": {"module": {"is_crate": true, "items": [1, 2, 3, 4]}}},
		"1": {"id": 1, "crate_id": 0, "name": "MyStruct", "visibility": "public", "docs": null, "inner": {"struct": {"kind": "unit", "generics": {"params": [], "where_predicates": []}, "impls": []}}},
		"2": {"id": 2, "crate_id": 0, "name": "MyEnum", "visibility": "public", "docs": null, "inner": {"enum": {"generics": {"params": [], "where_predicates": []}, "variants": [], "impls": []}}},
		"3": {"id": 3, "crate_id": 0, "name": "hidden", "visibility": "default", "docs": null, "inner": {"function": {"sig": {"inputs": [], "output": null}, "generics": {"params": [], "where_predicates": []}, "header": {}}}},
		"4": {"id": 4, "crate_id": 0, "name": null, "visibility": "default", "docs": null, "inner": {"impl": {"items": []}}}
	}
}`

func TestRenderCrateIndex(t *testing.T) {
	t.Parallel()
	crate := parseTestCrate(t, indexCrateJSON)

	got := RenderCrateIndex(crate)

	for _, want := range []string{
		"## mycrate",
		"Does useful things.",
		"## Item Counts",
		"**Total**: 2 public items",
		"- **Enum**: 1",
		"- **Struct**: 1",
		"### Struct",
		"- [MyStruct](MyStruct.md)",
		"### Enum",
		"- [MyEnum](MyEnum.md)",
		"docmd list mycrate",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}

	if strings.Contains(got, "hidden") {
		t.Errorf("private items must not appear in the index:\n%s", got)
	}
}

func TestRenderCrateIndexEmpty(t *testing.T) {
	t.Parallel()
	crate := parseTestCrate(t, `{
		"root": 0,
		"format_version": 37,
		"external_crates": {},
		"paths": {},
		"index": {
			"0": {"id": 0, "crate_id": 0, "name": "empty", "visibility": "public", "docs": null, "inner": {"module": {"is_crate": true, "items": []}}}
		}
	}`)

	got := RenderCrateIndex(crate)
	if !strings.Contains(got, "No public items found.") {
		t.Errorf("empty crate should report no public items:\n%s", got)
	}
}
