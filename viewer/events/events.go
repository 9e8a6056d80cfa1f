// This file is part of Memview.
//
// Memview is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Memview is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Memview.  If not, see <https://www.gnu.org/licenses/>.

package events

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/memview/curated"
)

// Sentinal error patterns.
const (
	MissingField   = "events: missing field (%s)"
	WrongFieldType = "events: field (%s) is not of type %s"
)

// Kind of message.
type Kind int

// List of valid Kind values.
const (
	GetMemory Kind = iota
	UpdateMemory
	SetMemory
	Step
)

func (k Kind) String() string {
	switch k {
	case GetMemory:
		return "GetMemory"
	case UpdateMemory:
		return "UpdateMemory"
	case SetMemory:
		return "SetMemory"
	case Step:
		return "Step"
	}
	return "unknown"
}

// List of field names.
const (
	FieldAddressStart = "address_start"
	FieldSize         = "size"
	FieldAddress      = "address"
	FieldData         = "data"
)

// Field is a named value in a message. Values are uint64 or []byte.
type Field struct {
	Name  string
	Value any
}

// Message sent between viewer and debuggee.
type Message struct {
	Kind   Kind
	Fields []Field
}

func (m Message) String() string {
	s := strings.Builder{}
	s.WriteString(m.Kind.String())
	for _, f := range m.Fields {
		switch v := f.Value.(type) {
		case uint64:
			s.WriteString(fmt.Sprintf(" %s=%#x", f.Name, v))
		case []byte:
			s.WriteString(fmt.Sprintf(" %s=(%d bytes)", f.Name, len(v)))
		default:
			s.WriteString(fmt.Sprintf(" %s=%v", f.Name, v))
		}
	}
	return s.String()
}

func (m Message) find(name string) (any, bool) {
	for _, f := range m.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// FindU64 returns the value of the named field.
func (m Message) FindU64(name string) (uint64, error) {
	v, ok := m.find(name)
	if !ok {
		return 0, curated.Errorf(MissingField, name)
	}
	u, ok := v.(uint64)
	if !ok {
		return 0, curated.Errorf(WrongFieldType, name, "uint64")
	}
	return u, nil
}

// FindData returns the value of the named field. The returned slice is not
// a copy.
func (m Message) FindData(name string) ([]byte, error) {
	v, ok := m.find(name)
	if !ok {
		return nil, curated.Errorf(MissingField, name)
	}
	d, ok := v.([]byte)
	if !ok {
		return nil, curated.Errorf(WrongFieldType, name, "data")
	}
	return d, nil
}

// NewGetMemory creates a request for size bytes of memory starting at the
// address.
func NewGetMemory(address uint64, size uint64) Message {
	return Message{
		Kind: GetMemory,
		Fields: []Field{
			{Name: FieldAddressStart, Value: address},
			{Name: FieldSize, Value: size},
		},
	}
}

// NewUpdateMemory creates a write of data to memory at the address.
func NewUpdateMemory(address uint64, data []byte) Message {
	return Message{
		Kind: UpdateMemory,
		Fields: []Field{
			{Name: FieldAddress, Value: address},
			{Name: FieldData, Value: data},
		},
	}
}

// NewSetMemory creates a response to a GetMemory request or a refresh of
// memory that was not requested.
func NewSetMemory(address uint64, data []byte) Message {
	return Message{
		Kind: SetMemory,
		Fields: []Field{
			{Name: FieldAddress, Value: address},
			{Name: FieldData, Value: data},
		},
	}
}

// NewStep creates a notification that the debuggee has executed.
func NewStep() Message {
	return Message{Kind: Step}
}

// AddressRange is the address and size fields of a GetMemory message.
func (m Message) AddressRange() (uint64, uint64, error) {
	address, err := m.FindU64(FieldAddressStart)
	if err != nil {
		return 0, 0, err
	}
	size, err := m.FindU64(FieldSize)
	if err != nil {
		return 0, 0, err
	}
	return address, size, nil
}

// AddressData is the address and data fields of a SetMemory or UpdateMemory
// message.
func (m Message) AddressData() (uint64, []byte, error) {
	address, err := m.FindU64(FieldAddress)
	if err != nil {
		return 0, nil, err
	}
	data, err := m.FindData(FieldData)
	if err != nil {
		return 0, nil, err
	}
	return address, data, nil
}
