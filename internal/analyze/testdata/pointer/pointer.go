package pointer

import "fieldsclass/fields"

type keys struct {
	Name *fields.Placeholder
}
