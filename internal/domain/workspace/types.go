package workspace

type Type string

const (
	TypeHairdresser Type = "hairdresser"
	TypeMakeup      Type = "makeup"
	TypeManicure    Type = "manicure"
	TypeCosmetology Type = "cosmetology"
	TypeMassage     Type = "massage"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeHairdresser, TypeMakeup, TypeManicure, TypeCosmetology, TypeMassage:
		return true
	default:
		return false
	}
}
