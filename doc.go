/*
Package ttp maintains a fraud Tactics-Techniques-Procedures (TTP) framework: a
single tree of tactics, techniques and procedures stored as an indented JSON
(or YAML) document.

The module ships an interactive editor (cmd/ttp) and this small library for
programmatic edits. Both work on the same model from package domain and
persist through the ports.TreeStore interface.

# Hierarchy

	root ("tactics", id T0000)
	 └─ Tactic      id "T*"
	     └─ Technique id "TQ*" (can nest)
	         └─ Procedure id "P*"

The prefixes are a convention only. The tree accepts any node under any parent;
`ttp validate` reports entries that break the convention.

# Usage

	fw, err := ttp.Open(ctx, "dataset.json")
	if err != nil {
		log.Fatal(err)
	}

	if err := fw.Add("root", domain.NewNode("T0001", "Reconnaissance", "Target research")); err != nil {
		log.Fatal(err)
	}

	if err := fw.Save(ctx); err != nil {
		log.Fatal(err)
	}

# File format

	{
	  "tactics": {
	    "id": "T0000",
	    "title": "tactics",
	    "description": "...",
	    "items": [ ... ]
	  }
	}

Any other top-level shape is treated as malformed.
*/
package ttp
