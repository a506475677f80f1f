package main

import "charity/internal/domain/schema"

// sampleChildren is loaded into an emptied children collection.
var sampleChildren = []schema.ChildRequest{
	{
		Name:     "Maria",
		Country:  "Kenya",
		Age:      intPtr(8),
		PhotoURL: "https://images.pexels.com/photos/3321798/pexels-photo-3321798.jpeg?auto=compress&cs=tinysrgb&dpr=2&h=650&w=940",
		Story:    "Maria loves playing soccer and dreams of becoming a teacher.",
	},
	{
		Name:     "David",
		Country:  "Nigeria",
		Age:      intPtr(10),
		PhotoURL: "https://images.pexels.com/photos/10103440/pexels-photo-10103440.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Story:    "David is a curious boy who loves to read and learn about science.",
	},
	{
		Name:     "Fatima",
		Country:  "Pakistan",
		Age:      intPtr(7),
		PhotoURL: "https://images.pexels.com/photos/5623049/pexels-photo-5623049.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Story:    "Fatima is an artist who loves to draw and paint pictures of her village.",
	},
}

func intPtr(v int) *int {
	return &v
}
