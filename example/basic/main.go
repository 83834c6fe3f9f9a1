package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/siherrmann/crmfill"
	"github.com/siherrmann/crmfill/database"
)

const sampleTranscript = `Had a great call with Priya Sharma, Director of Operations at Acme Logistics.
They need a better way to track shipments, their current tool causes a lot of churn.
She mentioned they are evaluating Salesforce and Zoho as well.
Budget is around $30K for the first year.
Next step is to schedule a product demo next week.
Her email is priya.sharma@acmelogistics.com.`

func main() {
	// In-memory registry, no Postgres needed for this example
	c := crmfill.New(database.NewMemoryRegistry(), nil)

	// Set up the default pipeline (NER model + sentence splitting + date resolution)
	if err := c.UseDefaultPipeline(); err != nil {
		log.Fatalf("Failed to set up pipeline: %v", err)
	}

	fmt.Println("Extracting CRM record from transcript...")
	record := c.Extract(context.Background(), sampleTranscript, "basic_example")

	out, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal record: %v", err)
	}
	fmt.Println(string(out))

	// A second extraction of the same transcript reports duplicates
	second := c.Extract(context.Background(), sampleTranscript, "basic_example")
	fmt.Printf("\nSecond run duplicate flags: contact=%v company=%v\n",
		second.DuplicateChecks.ContactExists,
		second.DuplicateChecks.CompanyExists,
	)

	fmt.Println("\nBasic example completed successfully!")
}
