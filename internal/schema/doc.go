// Package schema maps field type names to INTEGER definitions.
//
// Each schema field carries the data a code generator would otherwise bake
// into one class per field: a name, optional inclusive bounds, a decode
// policy and the tag used on the wire. Fields are declared in YAML:
//
//	fields:
//	  - name: Latitude
//	    lower: -900000000
//	    upper: 900000001
//	  - name: Count
//	    lower: 0
//	    upper: MAX
//	    tag: 1
//	    policy: lenient
//
// Load a file, or start from the built-in types:
//
//	reg := schema.LoadDefaultSchema()
//	lat, err := reg.Get("Latitude")
//	v := lat.New("lat")
//	err = v.SetInt64(374210000)
package schema
