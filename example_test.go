package pushdown_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/pushdown"
)

func ExampleNew() {
	eng, err := pushdown.New("testdata/food.pda")
	if err != nil {
		log.Fatal(err)
	}

	res := eng.Check(context.Background(), "bowl rice chicken")
	fmt.Println("accepted:", res.Accepted)
	for _, step := range res.Trace {
		fmt.Println(step)
	}
	// Output:
	// accepted: true
	// (start, bowl, bowl)
	// (bowl, rice, bowl_base)
	// (bowl_base, chicken, bowl_protein)
	// (bowl_protein, λ, done)
}

func ExampleEngine_Check_rejected() {
	eng, err := pushdown.New("testdata/food.pda")
	if err != nil {
		log.Fatal(err)
	}

	res := eng.Check(context.Background(), "sandwich beef")
	fmt.Println("accepted:", res.Accepted)
	fmt.Println("trace:", res.Trace)
	fmt.Println("reason:", res.Reason())
	// Output:
	// accepted: false
	// trace: [(start, sandwich, sandwich)]
	// reason: no transition from "sandwich" on "beef"
}
