package none

type plain struct {
	Name string
}
