package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// ToJSON renders a node as compact JSON, preserving object field order.
func ToJSON(y *Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := appendJSON(buf, y); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (y *Node) MarshalJSON() ([]byte, error) {
	return ToJSON(y)
}

func appendJSON(buf *bytes.Buffer, y *Node) error {
	switch y.Type {
	case NullType:
		buf.WriteString("null")
	case BoolType:
		buf.WriteString(strconv.FormatBool(y.Bool))
	case NumberType:
		switch {
		case y.Int64 != nil:
			buf.WriteString(strconv.FormatInt(*y.Int64, 10))
		case y.Float64 != nil:
			f := *y.Float64
			if math.IsNaN(f) || math.IsInf(f, 0) {
				buf.WriteString("null")
				break
			}
			buf.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
		default:
			buf.WriteString("0")
		}
	case StringType:
		d, err := json.Marshal(y.String)
		if err != nil {
			return err
		}
		buf.Write(d)
	case ArrayType:
		buf.WriteByte('[')
		for i, v := range y.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := appendJSON(buf, v); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case ObjectType:
		buf.WriteByte('{')
		for i, f := range y.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			d, err := json.Marshal(f.String)
			if err != nil {
				return err
			}
			buf.Write(d)
			buf.WriteByte(':')
			if err := appendJSON(buf, y.Values[i]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("cannot marshal node type %s", y.Type)
	}
	return nil
}
