package fakedata

// Lookup tables. Name tables hold ASCII letters only so derived emails stay
// within [a-z.].

var words = []string{
	"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing", "elit",
	"sed", "do", "eiusmod", "tempor", "incididunt", "ut", "labore", "et", "dolore",
	"magna", "aliqua", "enim", "ad", "minim", "veniam", "quis", "nostrud",
	"exercitation", "ullamco", "laboris", "nisi", "aliquip", "ex", "ea", "commodo",
	"consequat", "duis", "aute", "irure", "in", "reprehenderit", "voluptate",
	"velit", "esse", "cillum", "fugiat", "nulla", "pariatur",
}

var titles = []string{
	"Dashboard Overview",
	"Project Alpha",
	"Quarterly Report",
	"Team Performance",
	"Product Roadmap",
	"Customer Insights",
	"Sales Pipeline",
	"Marketing Campaign",
	"Release Notes",
	"Annual Summary",
}

var headings = []string{
	"Getting Started",
	"Recent Activity",
	"Key Metrics",
	"Upcoming Events",
	"Top Performers",
	"Latest Updates",
	"Quick Actions",
	"Account Settings",
}

var labels = []string{
	"Name", "Email", "Status", "Date", "Amount", "Category",
	"Priority", "Owner", "Progress", "Due Date", "Created", "Updated",
}

var firstNames = []string{
	"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael", "Linda",
	"William", "Elizabeth", "David", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Charles", "Karen", "Emma", "Olivia", "Liam", "Noah",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Wilson", "Anderson", "Thomas",
	"Taylor", "Moore", "Jackson", "Martin", "Lee", "Thompson", "White", "Harris", "Clark",
}

var emailDomains = []string{"example.com", "test.com", "demo.com", "sample.org"}

var roles = []string{
	"Admin", "Editor", "Viewer", "Owner", "Manager",
	"Developer", "Designer", "Analyst", "Support", "Guest",
}

var orderStatuses = []string{"Pending", "Processing", "Shipped", "Delivered", "Cancelled", "Refunded"}

var genericStatuses = []string{"Active", "Inactive", "Pending", "Completed", "Draft", "Archived"}

var priorities = []string{"Low", "Medium", "High", "Urgent"}

var tags = []string{
	"New", "Featured", "Popular", "Sale", "Limited", "Trending",
	"Bestseller", "Exclusive", "Beta", "Updated",
}

var icons = []string{
	"📊", "📈", "📉", "💼", "📁", "📋", "📌", "🔔", "⚙️", "👤",
	"🏠", "📅", "💬", "⭐", "🚀", "✅", "❗", "🔒", "💡", "🎯",
}

var colors = []string{
	"#3b82f6", "#ef4444", "#22c55e", "#eab308", "#a855f7",
	"#06b6d4", "#f97316", "#ec4899", "#64748b", "#14b8a6",
}

var chartCategories = []string{
	"Electronics", "Clothing", "Food", "Books", "Sports",
	"Home", "Toys", "Beauty", "Garden", "Automotive",
}

var navigation = []NavItem{
	{Label: "Dashboard", Href: "/", Icon: "home"},
	{Label: "Projects", Href: "/projects", Icon: "folder"},
	{Label: "Team", Href: "/team", Icon: "users"},
	{Label: "Calendar", Href: "/calendar", Icon: "calendar"},
	{Label: "Reports", Href: "/reports", Icon: "chart"},
	{Label: "Settings", Href: "/settings", Icon: "settings"},
}
