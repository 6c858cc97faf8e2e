// Package recipe describes a regex as data, a list of builder steps stored
// as JSON or YAML, and folds it onto a [builder.Builder].
//
// A recipe looks like this:
//
//	{
//	  "options": ["ignoreCase"],
//	  "steps": [
//	    {"op": "startOfString"},
//	    {"op": "group", "quantifier": {"kind": "exactly", "n": 3}, "steps": [
//	      {"op": "digit", "quantifier": {"kind": "between", "n": 1, "m": 3}},
//	      {"op": "text", "value": "."}
//	    ]},
//	    {"op": "digit", "quantifier": {"kind": "between", "n": 1, "m": 3}},
//	    {"op": "endOfString"}
//	  ]
//	}
//
// Every builder operation is available under its lowerCamel name. The
// "group", "nonCapturingGroup" and "namedGroup" ops take nested steps; the
// explicit "startGroup" / "endGroup" pairs are accepted too.
//
// Quantifier counts may be given as numbers or numeric strings.
package recipe
