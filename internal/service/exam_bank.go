package service

import "careerready_backend/internal/model"

// mockExamBank is the static fallback used when the generation API is down or
// unconfigured. Content is never mutated at runtime.
var mockExamBank = map[string][]model.Question{
	"DSA": {
		{
			ID:            "dsa-1",
			Type:          model.QuestionMCQ,
			Question:      "What is the time complexity of binary search?",
			Options:       []string{"O(n)", "O(log n)", "O(n²)", "O(1)"},
			CorrectAnswer: "O(log n)",
			Explanation:   "Binary search divides the search space in half each time, resulting in logarithmic time complexity.",
		},
		{
			ID:            "dsa-2",
			Type:          model.QuestionMCQ,
			Question:      "What is the worst-case time complexity of quicksort?",
			Options:       []string{"O(n)", "O(n log n)", "O(n²)", "O(log n)"},
			CorrectAnswer: "O(n²)",
			Explanation:   "Quicksort has O(n²) worst-case when pivot selection is poor.",
		},
		{
			ID:            "dsa-3",
			Type:          model.QuestionMCQ,
			Question:      "Which data structure uses FIFO?",
			Options:       []string{"Stack", "Queue", "Tree", "Graph"},
			CorrectAnswer: "Queue",
			Explanation:   "Queue (First-In-First-Out) processes elements in the order they were added.",
		},
		{
			ID:            "dsa-4",
			Type:          model.QuestionMCQ,
			Question:      "What is the time complexity of inserting into a hash table?",
			Options:       []string{"O(n)", "O(log n)", "O(1)", "O(n²)"},
			CorrectAnswer: "O(1)",
			Explanation:   "Hash tables provide average O(1) time complexity for insertions with good hash functions.",
		},
		{
			ID:            "dsa-5",
			Type:          model.QuestionMCQ,
			Question:      "Which sorting algorithm is most stable?",
			Options:       []string{"Bubble Sort", "Quick Sort", "Merge Sort", "Heap Sort"},
			CorrectAnswer: "Merge Sort",
			Explanation:   "Merge Sort maintains the relative order of equal elements, making it a stable sort.",
		},
		{
			ID:            "dsa-6",
			Type:          model.QuestionMCQ,
			Question:      "What is a balanced binary search tree used for?",
			Options:       []string{"Fast random access", "Maintaining sorted data with O(log n) operations", "Storing graphs", "Caching"},
			CorrectAnswer: "Maintaining sorted data with O(log n) operations",
			Explanation:   "BSTs like AVL or Red-Black trees keep data sorted while ensuring logarithmic search, insert, and delete.",
		},
		{
			ID:            "dsa-7",
			Type:          model.QuestionMCQ,
			Question:      "What does dynamic programming rely on?",
			Options:       []string{"Recursion only", "Overlapping subproblems and memoization", "Sorting", "Hashing"},
			CorrectAnswer: "Overlapping subproblems and memoization",
			Explanation:   "DP solves overlapping subproblems by storing intermediate results to avoid recomputation.",
		},
		{
			ID:            "dsa-8",
			Type:          model.QuestionMCQ,
			Question:      "In a graph, what does DFS stand for?",
			Options:       []string{"Depth-First Search", "Dynamic Finite State", "Distributed File System", "Data Flow Streaming"},
			CorrectAnswer: "Depth-First Search",
			Explanation:   "DFS traverses a graph by exploring as far as possible along each branch before backtracking.",
		},
		{
			ID:            "dsa-exp-1",
			Type:          model.QuestionExplanation,
			Question:      "Explain how a linked list differs from an array in terms of memory allocation and access patterns.",
			CorrectAnswer: "Arrays allocate contiguous memory for fast O(1) access but require reallocation on resize. Linked lists allocate non-contiguous memory, allowing O(1) insertion/deletion but requiring O(n) access time to reach an element.",
			Explanation:   "This tests understanding of fundamental data structure trade-offs.",
		},
		{
			ID:            "dsa-exp-2",
			Type:          model.QuestionExplanation,
			Question:      "Describe the difference between a greedy algorithm and a dynamic programming approach. When would you use each?",
			CorrectAnswer: "Greedy algorithms make locally optimal choices at each step (e.g., coin change with standard denominations). DP solves overlapping subproblems optimally (e.g., unbounded knapsack). Use greedy when local optimality guarantees global optimality; use DP when problems have optimal substructure but lack greedy property.",
			Explanation:   "This assesses grasp of algorithmic paradigms and problem-solving strategy selection.",
		},
	},
	"SQL": {
		{
			ID:            "sql-1",
			Type:          model.QuestionMCQ,
			Question:      "What does JOIN do in SQL?",
			Options:       []string{"Merges rows", "Combines columns from multiple tables", "Deletes data", "Updates records"},
			CorrectAnswer: "Combines columns from multiple tables",
			Explanation:   "JOIN combines related data from multiple tables based on a condition.",
		},
		{
			ID:            "sql-2",
			Type:          model.QuestionMCQ,
			Question:      "Which is faster: SELECT * or SELECT specific columns?",
			Options:       []string{"SELECT *", "SELECT specific columns", "They are equal", "Depends on database"},
			CorrectAnswer: "SELECT specific columns",
			Explanation:   "Selecting specific columns reduces data transfer and improves query performance.",
		},
		{
			ID:            "sql-3",
			Type:          model.QuestionMCQ,
			Question:      "What is normalization?",
			Options:       []string{"Converting to uppercase", "Organizing data to reduce redundancy", "Deleting tables", "Backup process"},
			CorrectAnswer: "Organizing data to reduce redundancy",
			Explanation:   "Normalization is a process to organize database structure efficiently.",
		},
		{
			ID:            "sql-4",
			Type:          model.QuestionMCQ,
			Question:      "Which constraint prevents NULL values?",
			Options:       []string{"UNIQUE", "NOT NULL", "PRIMARY KEY", "FOREIGN KEY"},
			CorrectAnswer: "NOT NULL",
			Explanation:   "NOT NULL constraint ensures a column always has a value.",
		},
		{
			ID:            "sql-5",
			Type:          model.QuestionMCQ,
			Question:      "What does GROUP BY do?",
			Options:       []string{"Sorts rows", "Groups rows by column values for aggregate functions", "Deletes duplicates", "Filters rows"},
			CorrectAnswer: "Groups rows by column values for aggregate functions",
			Explanation:   "GROUP BY aggregates data across multiple rows sharing the same column values.",
		},
		{
			ID:            "sql-6",
			Type:          model.QuestionMCQ,
			Question:      "What is the difference between INNER JOIN and LEFT JOIN?",
			Options:       []string{"No difference", "INNER includes unmatched left rows", "LEFT includes unmatched left rows", "INNER is faster"},
			CorrectAnswer: "LEFT includes unmatched left rows",
			Explanation:   "INNER JOIN returns only matching rows; LEFT JOIN includes all left table rows even without matches.",
		},
		{
			ID:            "sql-7",
			Type:          model.QuestionMCQ,
			Question:      "What does an INDEX do?",
			Options:       []string{"Sorts data", "Speeds up queries by creating a lookup structure", "Compresses data", "Encrypts data"},
			CorrectAnswer: "Speeds up queries by creating a lookup structure",
			Explanation:   "Indexes create data structures (like B-trees) to quickly locate rows without full table scans.",
		},
		{
			ID:            "sql-8",
			Type:          model.QuestionMCQ,
			Question:      "What is a foreign key?",
			Options:       []string{"A key that sorts data", "A column that references a primary key in another table", "A temporary key", "A key that encrypts data"},
			CorrectAnswer: "A column that references a primary key in another table",
			Explanation:   "Foreign keys enforce referential integrity by linking columns across tables.",
		},
		{
			ID:            "sql-exp-1",
			Type:          model.QuestionExplanation,
			Question:      "Explain the concept of database normalization. Why is it important?",
			CorrectAnswer: "Normalization is the process of organizing data into tables to reduce redundancy and improve data integrity. It ensures each piece of data is stored once, reduces storage space, prevents anomalies during insert/update/delete operations, and makes queries efficient.",
			Explanation:   "Tests understanding of database design principles and data integrity.",
		},
		{
			ID:            "sql-exp-2",
			Type:          model.QuestionExplanation,
			Question:      "Describe the differences between UNION and UNION ALL in SQL. When would you use each?",
			CorrectAnswer: "UNION removes duplicate rows from the combined result set, while UNION ALL includes all rows even if they are duplicates. Use UNION when you need unique rows; use UNION ALL when performance is critical and duplicates are acceptable or desired.",
			Explanation:   "Tests knowledge of set operations and query optimization.",
		},
	},
	"Computer Networks": {
		{
			ID:            "net-1",
			Type:          model.QuestionMCQ,
			Question:      "What is the port number for HTTP?",
			Options:       []string{"25", "80", "443", "3306"},
			CorrectAnswer: "80",
			Explanation:   "HTTP uses port 80 by default.",
		},
		{
			ID:            "net-2",
			Type:          model.QuestionMCQ,
			Question:      "Which layer deals with routing?",
			Options:       []string{"Physical", "Data Link", "Network", "Transport"},
			CorrectAnswer: "Network",
			Explanation:   "Network layer (Layer 3) handles routing and logical addressing.",
		},
		{
			ID:            "net-3",
			Type:          model.QuestionMCQ,
			Question:      "What is the function of TCP?",
			Options:       []string{"Routing packets", "Reliable data delivery", "Physical transmission", "DNS resolution"},
			CorrectAnswer: "Reliable data delivery",
			Explanation:   "TCP (Transmission Control Protocol) ensures reliable, ordered delivery.",
		},
		{
			ID:            "net-4",
			Type:          model.QuestionMCQ,
			Question:      "What is HTTPS vs HTTP?",
			Options:       []string{"Same thing", "HTTP is encrypted", "HTTPS is encrypted", "Different ports"},
			CorrectAnswer: "HTTPS is encrypted",
			Explanation:   "HTTPS adds SSL/TLS encryption to HTTP for secure communication.",
		},
		{
			ID:            "net-5",
			Type:          model.QuestionMCQ,
			Question:      "What does DNS do?",
			Options:       []string{"Encrypts data", "Translates domain names to IP addresses", "Routes packets", "Manages firewalls"},
			CorrectAnswer: "Translates domain names to IP addresses",
			Explanation:   "DNS (Domain Name System) converts human-readable domain names into IP addresses.",
		},
		{
			ID:            "net-6",
			Type:          model.QuestionMCQ,
			Question:      "What is the purpose of a subnet mask?",
			Options:       []string{"Encrypt data", "Identify network and host portions of an IP address", "Route packets", "Manage bandwidth"},
			CorrectAnswer: "Identify network and host portions of an IP address",
			Explanation:   "Subnet masks divide IP addresses into network and host parts for proper routing.",
		},
		{
			ID:            "net-7",
			Type:          model.QuestionMCQ,
			Question:      "What is UDP used for?",
			Options:       []string{"Reliable delivery", "Fast, connectionless delivery without reliability guarantees", "Encryption", "Routing"},
			CorrectAnswer: "Fast, connectionless delivery without reliability guarantees",
			Explanation:   "UDP prioritizes speed over reliability, making it suitable for real-time applications.",
		},
		{
			ID:            "net-8",
			Type:          model.QuestionMCQ,
			Question:      "What is the OSI model?",
			Options:       []string{"A protocol", "A framework of 7 layers describing network communication", "A routing algorithm", "An encryption method"},
			CorrectAnswer: "A framework of 7 layers describing network communication",
			Explanation:   "The OSI model standardizes how network communication happens across 7 layers.",
		},
		{
			ID:            "net-exp-1",
			Type:          model.QuestionExplanation,
			Question:      "Explain the difference between TCP and UDP. When would you choose each protocol?",
			CorrectAnswer: "TCP provides reliable, ordered delivery with error checking and flow control, suitable for applications needing accuracy (email, file transfer). UDP provides fast, connectionless delivery without guarantees, ideal for real-time applications (video streaming, gaming, VoIP) where speed matters more than occasional packet loss.",
			Explanation:   "Tests understanding of transport layer protocols and their trade-offs.",
		},
		{
			ID:            "net-exp-2",
			Type:          model.QuestionExplanation,
			Question:      "Describe how a network packet travels from one computer to another across the internet.",
			CorrectAnswer: "A packet is created at the application layer, encapsulated through transport, internet, and link layers. The IP layer determines the route to the destination IP. At each hop, routers use the subnet mask and routing tables to forward the packet. The link layer handles physical transmission. DNS resolves the domain to IP if needed. At the destination, the packet is de-encapsulated and delivered to the correct application port.",
			Explanation:   "Tests comprehensive understanding of network layering and packet flow.",
		},
	},
}
