// Package envelope is the success-side wire format.
//
// Each successful response wraps its payload as {"success":true,"data":...};
// deletions answer with the flag alone.
package envelope

type Wrapped[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

func Of[T any](data T) Wrapped[T] {
	return Wrapped[T]{Success: true, Data: data}
}

type Flag struct {
	Success bool `json:"success"`
}

func OK() Flag {
	return Flag{Success: true}
}
