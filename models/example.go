package models

// ExampleReview is a canned review users can load into the analyzer form.
type ExampleReview struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// ExampleReviews returns the built-in sample reviews shown in the UI picklist.
func ExampleReviews() []ExampleReview {
	return []ExampleReview{
		{
			Name: "Samsung Galaxy S24 Ultra",
			Text: `I recently upgraded to the Samsung Galaxy S24 Ultra, and I must say, it's an absolute powerhouse! The Snapdragon 8 Gen 3 processor makes everything lightning fast-whether I'm gaming, multitasking, or editing photos. The 5000mAh battery easily lasts a full day even with heavy use, and the 45W fast charging is a lifesaver.
The S-Pen integration is a great touch for note-taking and quick sketches, though I don't use it often. What really blew me away is the 200MP camera-the night mode is stunning, capturing crisp, vibrant images even in low light. Zooming up to 100x actually works well for distant objects, but anything beyond 30x loses quality.
However, the weight and size make it a bit uncomfortable for one-handed use. Also, Samsung's One UI still comes with bloatware-why do I need five different Samsung apps for things Google already provides? The $1,300 price tag is also a hard pill to swallow.`,
		},
		{
			Name: "MacBook Air M2",
			Text: `Just got the new MacBook Air with M2 chip and I'm blown away by the performance! The battery life is incredible - I can work for 10+ hours without charging. The new design is sleek and the display is gorgeous with excellent color accuracy.
However, it does get quite warm during intensive tasks and the webcam could be better. Also, the limited ports are still an issue. Overall, great laptop for the price point.`,
		},
		{
			Name: "Restaurant Review",
			Text: `Visited this restaurant last weekend and had a terrible experience. The service was incredibly slow - we waited 45 minutes just to order. When the food finally arrived, it was cold and bland. The prices are way too high for the quality you get. The only positive was the nice ambiance, but that doesn't make up for everything else. Won't be coming back.`,
		},
	}
}
