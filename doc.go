// Jannis M. Hoffmann, 13. 9. 2018

/*
Package airp holds JSON documents in compact, single owner cells.
Every JSON value is one fixed-size Value. Strings of up to 15 bytes are kept
inside the cell, longer strings, arrays and objects own one heap buffer each.

A Value is looked at through typed views that share its memory: String,
Number, Boolean, Array[T], Object[T] and Optional[T]. Cast and Probe check
the cell's tag before handing out a view:

	v, _ := airp.FromGo(map[string]interface{}{"ids": []int{1, 2}})
	obj, err := airp.Cast[airp.Object[airp.Array[airp.Number]]](&v)
	if err != nil {
		return err
	}
	ids := obj.At("ids")
	n := airp.Int(3)
	ids.PushBack(&n)

Cells own their payloads. Copy them with Clone and hand them over with Take,
PushBack or MoveFrom; a plain Go assignment shares the heap payload.

Text parsing and serialization are not part of this package.
*/
package jsonvalue_airp // import "github.com/d1ced/jsonvalue_airp"
