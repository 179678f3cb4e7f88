package ir

import "testing"

func TestFromKeyValsOrder(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: "z", Val: FromInt(1)},
		{Key: "a", Val: FromString("x")},
	})
	if obj.Type != ObjectType {
		t.Fatalf("expected object, got %s", obj.Type)
	}
	if len(obj.Fields) != 2 || len(obj.Values) != 2 {
		t.Fatalf("expected 2 fields and values, got %d/%d", len(obj.Fields), len(obj.Values))
	}
	if obj.Fields[0].String != "z" || obj.Fields[1].String != "a" {
		t.Errorf("insertion order not preserved: %q, %q", obj.Fields[0].String, obj.Fields[1].String)
	}
	if obj.Values[0].Parent != obj || obj.Values[0].ParentField != "z" || obj.Values[0].ParentIndex != 0 {
		t.Errorf("bad parent links on first value")
	}
}

func TestFromMapSorted(t *testing.T) {
	obj := FromMap(map[string]*Node{
		"b": FromInt(2),
		"a": FromInt(1),
	})
	if obj.Fields[0].String != "a" || obj.Fields[1].String != "b" {
		t.Errorf("expected sorted keys, got %q, %q", obj.Fields[0].String, obj.Fields[1].String)
	}
}

func TestGet(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromInt(1)},
		{Key: "b", Val: FromBool(true)},
	})
	if v := Get(obj, "b"); v == nil || v.Type != BoolType || !v.Bool {
		t.Errorf("Get(b) = %+v", v)
	}
	if v := Get(obj, "missing"); v != nil {
		t.Errorf("Get(missing) = %+v, want nil", v)
	}
	if v := Get(FromInt(1), "a"); v != nil {
		t.Errorf("Get on non-object = %+v, want nil", v)
	}
}

func TestFromSlice(t *testing.T) {
	arr := FromSlice([]*Node{FromInt(1), Null()})
	if arr.Type != ArrayType || len(arr.Values) != 2 {
		t.Fatalf("bad array: %+v", arr)
	}
	if arr.Values[1].Parent != arr || arr.Values[1].ParentIndex != 1 {
		t.Errorf("bad parent links on second element")
	}
	if arr.Values[1].Root() != arr {
		t.Errorf("Root() did not reach the array")
	}
}

func TestToJSON(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: "z", Val: FromInt(1)},
		{Key: "a", Val: FromSlice([]*Node{FromString("x"), FromBool(false), Null()})},
	})
	d, err := ToJSON(obj)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"z":1,"a":["x",false,null]}`
	if string(d) != want {
		t.Errorf("got %s, want %s", d, want)
	}
}
