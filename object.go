package pnet

type Document map[string]interface{}

func (d Document) With(key string, value interface{}) Document {
	d[key] = value
	return d
}

type Object interface {
	Kind() Kind
	Identifier() string
	String() string
	Document() Document
}

type Kind int

const (
	PlaceObject Kind = iota
	TransitionObject
	ArcObject
	NetObject
	ReportObject
)
