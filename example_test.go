package ttp_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/ttp"
	"github.com/aretw0/ttp/pkg/adapters/memory"
	"github.com/aretw0/ttp/pkg/domain"
)

// ExampleOpen_memory demonstrates editing a framework held in memory.
// This is useful for testing or when you don't want to rely on the file system.
func ExampleOpen_memory() {
	ctx := context.Background()

	fw, err := ttp.Open(ctx, "", ttp.WithStore(memory.NewStore()))
	if err != nil {
		log.Fatal(err)
	}

	_ = fw.Add("root", domain.NewNode("T0001", "Reconnaissance", "Target research"))
	_ = fw.Add("T0001", domain.NewNode("TQ0001", "OSINT", "Open sources"))
	_ = fw.Add("TQ0001", domain.NewNode("P0001", "Social media scraping", "Profiles and posts"))

	for line := range fw.Lines() {
		fmt.Println(line)
	}

	// Output:
	// T0000 — tactics
	//   ├─ T0001 — Reconnaissance
	//     ├─ TQ0001 — OSINT
	//       ├─ P0001 — Social media scraping
}

// ExampleFramework_Delete shows that removing a node takes its subtree with it.
func ExampleFramework_Delete() {
	fw, err := ttp.Open(context.Background(), "", ttp.WithStore(memory.NewStore()))
	if err != nil {
		log.Fatal(err)
	}

	_ = fw.Add("root", domain.NewNode("T0001", "Reconnaissance", ""))
	_ = fw.Add("T0001", domain.NewNode("TQ0001", "OSINT", ""))

	fmt.Println(fw.Delete("T0000"))
	fmt.Println(fw.Delete("T0001"))
	fmt.Println(fw.Find("TQ0001") == nil)

	// Output:
	// cannot delete the root node
	// <nil>
	// true
}
