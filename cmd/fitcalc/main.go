package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/yusufkecer/fitness-crm-backend/internal/fitness"
)

func main() {
	weight := flag.String("weight", "", "body weight in kg")
	height := flag.String("height", "", "height in cm")
	age := flag.String("age", "", "age in years")
	gender := flag.String("gender", "", "male | female")
	activity := flag.String("activity", "", "sedentary | lightly_active | moderately_active | very_active | extra_active")
	hr := flag.String("hr", "", "resting heart rate in bpm")
	asJSON := flag.Bool("json", false, "print the metrics as JSON")
	flag.Parse()

	in := fitness.ParseInput(flagsToRaw(*weight, *height, *age, *gender, *activity, *hr))
	m := fitness.Calculate(in)

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(m); err != nil {
			fmt.Fprintf(os.Stderr, "encode metrics: %s\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println(renderReport(in, m))
}

// flagsToRaw keeps only the flags that were given so ParseInput sees them as
// the same loose values an API caller would send.
func flagsToRaw(weight, height, age, gender, activity, hr string) map[string]any {
	raw := map[string]any{}
	for key, v := range map[string]string{
		"weight":             weight,
		"height":             height,
		"age":                age,
		"gender":             gender,
		"activity_level":     activity,
		"resting_heart_rate": hr,
	} {
		if v != "" {
			raw[key] = v
		}
	}
	return raw
}
