package matrix_test

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/fixmat/matrix"
)

// ExampleAdd demonstrates element-wise addition of two 3×3 matrices.
func ExampleAdd() {
	a, _ := matrix.NewFilled(3, 3, 5)
	b, _ := matrix.NewFilled(3, 3, 4)

	sum, err := matrix.Add(a, b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(sum)
	// Output:
	// [9, 9, 9]
	// [9, 9, 9]
	// [9, 9, 9]
}

// ExampleMatrix_AddScalarInPlace shifts every element of a matrix.
func ExampleMatrix_AddScalarInPlace() {
	m, _ := matrix.NewFilled(2, 3, 4)
	_ = m.AddScalarInPlace(3)
	fmt.Print(m)
	// Output:
	// [7, 7, 7]
	// [7, 7, 7]
}

// ExampleMatrix_MarshalJSON shows the document form of a matrix.
func ExampleMatrix_MarshalJSON() {
	m, _ := matrix.FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	data, _ := json.Marshal(m)
	fmt.Println(string(data))
	// Output:
	// {"height":2,"width":3,"matrix":[[1,2,3],[4,5,6]]}
}

// ExampleDecodeInto shows that a document must match the target shape.
func ExampleDecodeInto() {
	m, _ := matrix.New[int](3, 3)
	err := matrix.DecodeInto(m, []byte(`{"height":2,"width":2,"matrix":[[1,2],[3,4]]}`))
	fmt.Println(err != nil)
	// Output:
	// true
}

// ExampleMatrix_Column extracts a column as an independent copy.
func ExampleMatrix_Column() {
	m, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	col, _ := m.Column(1)
	fmt.Println(col, col.Len())
	// Output:
	// [2 4 6] 3
}

// ExampleConvert mixes element types through an explicit conversion.
func ExampleConvert() {
	ints, _ := matrix.NewFilled(2, 2, 4)
	floats, _ := matrix.NewFilled(2, 2, 0.5)

	widened, _ := matrix.Convert[float64](ints)
	sum, _ := matrix.Add(widened, floats)
	fmt.Print(sum)
	// Output:
	// [4.5, 4.5]
	// [4.5, 4.5]
}
