// Package io reads Gradle dependency dumps and writes resolved reports.
//
// # Input Format
//
// The dump is a single JSON object produced by an external graph-dumping
// plugin. Both top-level keys are required:
//
//	{
//	  "root": "com.example:app:1.0",
//	  "nodes": {
//	    "com.example:app:1.0": {
//	      "children": ["org.slf4j:slf4j-api:2.0.9"],
//	      "configurations": ["implementation"]
//	    }
//	  }
//	}
//
// Per node, "children" and "configurations" are optional and default to
// empty. Nothing else is validated: the dump is a read-only contract owned
// by the plugin.
//
// # Import
//
// Use [ImportJSON] to read a dump from a file path, or [ReadJSON] to read
// from any io.Reader:
//
//	g, err := io.ImportJSON("build/deps.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Errors carry codes from pkg/errors: FILE_NOT_FOUND when the path does not
// exist and INVALID_INPUT when the content does not decode or lacks "root"
// or "nodes". The whole input is loaded into memory at once.
//
// # Export
//
// [NewReport] flattens a resolved index into the list-mode view, annotated
// with shallowest depth and resolution status. [WriteReport] encodes it as
// JSON or YAML (gopkg.in/yaml.v3) for other tools to consume.
package io
