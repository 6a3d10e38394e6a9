// Package schema loads declarative widget panels from JSON or YAML files.
//
// A document maps panel ids onto ordered field lists:
//
//	panels:
//	  translation:
//	    title: Translation
//	    fields:
//	      - key: x
//	        type: slider
//	        max: 400
//	      - key: outline
//	        type: checkbox
//	      - key: palette
//	        type: option
//	        options: [warm, cool, mono]
//
// Every key other than key, name and type is handed to the widget type
// registry as a parameter.
package schema
