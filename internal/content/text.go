package content

var (
	AboutMe = `I love building software that’s both useful and fun, and I’m always curious about how things work behind the scenes. 
	Most of my projects start with a simple idea and turn into a chance to learn something new, whether it’s exploring a 
	different language, experimenting with tools, or solving tricky problems.
	When I’m not coding, you’ll usually find me training Muay Thai, shooting pool with friends, 
	or chasing down a new challenge outside the screen.`

	ProjectOne = `A terminal-based email client built in Go with fuzzyfinder capabilities
	using the Charmbracelet TUI framework and go-imap.`

	ProjectTwo = `A terminal-based music streaming application built in Go with an elegant TUI 
	interface, leveraging yt-dlp and mpv for seamless YouTube Music playback directly from the command line.`

	ProjectThree = `A machine learning-powered web application that uses TF-IDF vectorization and cosine 
	similarity to recommend games based on content analysis, featuring interactive data visualizations and 
	real-time filtering by user reviews and ratings.`

	ProjectFour = `A modern, responsive portfolio website built with Go, Gin framework, and HTMX for 
	dynamic interactions, styled with Tailwind CSS and enhanced with Alpine.js for seamless client-side 
	interactivity without traditional JavaScript frameworks.`

	ExperienceIntro = `Work, study and certifications on one timeline. Entries that overlap branch into
	their own lanes; hover a card to see the details.`
)
