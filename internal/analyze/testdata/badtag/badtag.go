package badtag

import "fieldsclass/fields"

type keys struct {
	Name  fields.Placeholder
	Count int `values:"a,b"`
}
