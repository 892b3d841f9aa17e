// Package schema describes the required shape of a generator response.
//
// LLM-judge checks hand a Schema to the generation collaborator together
// with the prompt; the returned value must conform before the judge is
// allowed to interpret it. A Schema maps field names to types:
//
//	s := schema.Schema{
//	    "pass":   schema.Bool(),
//	    "reason": schema.String(),
//	    "score":  schema.Float(),
//	}
//
//	if err := schema.Validate(s, response); err != nil {
//	    // response does not conform; the judge reports status=error
//	}
//
// Schemas can also be parsed from type-name strings, which is how
// declarative suite files describe them:
//
//	s, err := schema.ParseTypeMap(map[string]string{
//	    "pass":   "bool",
//	    "reason": "string",
//	    "tags":   "[string]",
//	})
package schema
