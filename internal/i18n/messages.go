package i18n

var messages = map[Locale]map[string]string{
	LocaleZH: {
		"appName":      "iRacing Wiki",
		"home":         "首页",
		"search":       "搜索",
		"back":         "返回",
		"backToSearch": "返回搜索",
		"language":     "语言",
		"loading":      "加载中...",

		"heroTitlePrefix":   "iRacing",
		"heroTitleSuffix":   "终极百科",
		"heroSubtitle":      "搜索赛车、赛道、调校和社区工具。",
		"searchPlaceholder": "搜索赛车、赛道、设置...",
		"featuredTitle":     "精选资源",
		"featuredSubtitle":  "每一位模拟赛车手的必备工具。",
		"card1Title":        "中文语音包",
		"card1Desc":         "青盟iRacing荣誉出品，MeiMei领航员语音包，可能是你最需要的中文语音包。",
		"card2Title":        "涂装工具",
		"card2Desc":         "Trading Paints, 自定义涂装, 头盔设计以及赛车服定制指南。",
		"card3Title":        "遥测数据",
		"card3Desc":         "VRS, MoTec, 以及其他帮助你提升圈速的数据分析工具。",
		"footer":            "© 2025 iRacing Wiki.",

		"searchResults":   "搜索结果",
		"foundResultsFor": "搜索结果：",
		"refineSearch":    "输入关键词...",
		"scanning":        "正在扫描...",
		"noResultsTitle":  "未找到相关词条",
		"noResultsDesc":   "我们的资料库中暂时没有相关内容。尝试使用外部引擎搜索：",
		"searchGoogle":    "搜索 Google",
		"searchBing":      "搜索 Bing",
		"searchBaidu":     "搜索百度",

		"updated": "更新于",

		"voicePackTitle":     "青盟iR中文语音包",
		"voicePackTag":       "语音包",
		"tradingPaintsTitle": "Trading Paints 涂装工具",
		"tradingPaintsTag":   "涂装工具",

		"category.Car":      "赛车",
		"category.Track":    "赛道",
		"category.Series":   "系列赛",
		"category.Software": "软件",
		"category.Resource": "资源",
		"category.Other":    "其他",

		"error.invalidRequest":      "请输入搜索内容或上传图片。",
		"error.emptyQuery":          "搜索内容不能为空。",
		"error.captioningFailed":    "无法识别图片，请稍后重试或输入文字搜索。",
		"error.invalidImage":        "图片格式无效。",
		"error.imageTooLarge":       "图片过大，最大支持 5MB。",
		"error.entryNotFound":       "未找到该词条。",
		"contributionSaved":         "感谢投稿！我们会尽快审核。",
		"error.rateLimited":         "请求过于频繁，请稍后再试。",
		"error.forbidden":           "访问被拒绝。",
		"error.invalidContribution": "请填写标题和内容。",
	},
	LocaleEN: {
		"appName":      "iRacing Wiki",
		"home":         "Home",
		"search":       "Search",
		"back":         "Back",
		"backToSearch": "Back to Search",
		"language":     "Language",
		"loading":      "Loading...",

		"heroTitlePrefix":   "The Ultimate",
		"heroTitleSuffix":   "Encyclopedia",
		"heroSubtitle":      "Search for cars, tracks, setups, and community tools.",
		"searchPlaceholder": "Search for cars, tracks, setups...",
		"featuredTitle":     "Featured Resources",
		"featuredSubtitle":  "Essential tools and third-party software for every sim racer.",
		"card1Title":        "Chinese Voice Pack",
		"card1Desc":         "The ultimate Chinese spotter pack 'MeiMei', created by Qingmeng league.",
		"card2Title":        "Trading Paints",
		"card2Desc":         "Custom liveries, helmet designs, and suit customization guides for your racing career.",
		"card3Title":        "Telemetry",
		"card3Desc":         "VRS, MoTec, and other data analysis tools to help you find those extra tenths.",
		"footer":            "© 2025 iRacing Wiki.",

		"searchResults":   "Search Results",
		"foundResultsFor": "Found results for",
		"refineSearch":    "Refine your search...",
		"scanning":        "Scanning the grid...",
		"noResultsTitle":  "No results found in our Wiki",
		"noResultsDesc":   "We couldn't find a direct match. Try checking external sources automatically:",
		"searchGoogle":    "Search Google",
		"searchBing":      "Search Bing",
		"searchBaidu":     "Search Baidu",

		"updated": "Updated",

		"voicePackTitle":     "Qingmeng Chinese Voice Pack",
		"voicePackTag":       "Spotter Pack",
		"tradingPaintsTitle": "Trading Paints",
		"tradingPaintsTag":   "Livery Tool",

		"category.Car":      "Car",
		"category.Track":    "Track",
		"category.Series":   "Series",
		"category.Software": "Software",
		"category.Resource": "Resource",
		"category.Other":    "Other",

		"error.invalidRequest":      "Enter a search query or upload an image.",
		"error.emptyQuery":          "The search query is empty.",
		"error.captioningFailed":    "We couldn't read that image. Try again or search by text.",
		"error.invalidImage":        "The image could not be decoded.",
		"error.imageTooLarge":       "Images are limited to 5 MB.",
		"error.entryNotFound":       "That entry does not exist.",
		"contributionSaved":         "Thanks for contributing! We'll review it soon.",
		"error.rateLimited":         "Too many requests, please slow down.",
		"error.forbidden":           "Access denied.",
		"error.invalidContribution": "A title and content are required.",
	},
}
