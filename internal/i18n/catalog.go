package i18n

// catalog maps every language to its message table. Keys are shared; a key
// missing from a table falls back to the key itself.
var catalog = map[Lang]map[string]string{
	Chinese: {
		"game.title":   "🐍 贪吃蛇游戏",
		"game.welcome": "欢迎来到贪吃蛇游戏！",

		"stats.score":     "分数",
		"stats.highScore": "最高分",
		"stats.level":     "等级",
		"stats.time":      "时间",
		"stats.sound":     "音效",
		"stats.length":    "长度",

		"difficulty.label":  "难度",
		"difficulty.easy":   "简单",
		"difficulty.medium": "中等",
		"difficulty.hard":   "困难",
		"difficulty.expert": "专家",

		"button.startGame": "开始游戏",
		"button.pause":     "暂停",
		"button.resume":    "继续",
		"button.reset":     "重置",
		"button.playAgain": "再玩一次",
		"button.mainMenu":  "主菜单",

		"controls.title":      "🎮 控制方式",
		"controls.move":       "移动蛇",
		"controls.pause":      "暂停/继续",
		"controls.difficulty": "选择难度",
		"controls.language":   "切换语言",
		"controls.sound":      "音效开关",
		"controls.scoreboard": "排行榜",
		"controls.screenshot": "截图",
		"controls.quit":       "退出",

		"game.paused":         "游戏暂停",
		"game.pauseHint":      "按空格键继续游戏",
		"game.over":           "游戏结束！",
		"game.victory":        "🎉 胜利！🎉",
		"game.victoryMessage": "你已经填满了整个游戏板！",

		"final.score":          "最终分数",
		"final.level":          "到达等级",
		"final.foodEaten":      "吃掉食物",
		"final.timePlayed":     "游戏时间",
		"final.perfectScore":   "完美分数",
		"final.finalLevel":     "最终等级",
		"final.totalFood":      "总共吃掉",
		"final.completionTime": "完成时间",
		"final.newRecord":      "🎉 新纪录！🎉",
		"final.perfectGame":    "🏆 完美游戏！🏆",

		"scoreboard.title":   "排行榜",
		"scoreboard.empty":   "还没有记录",
		"scoreboard.rank":    "名次",
		"scoreboard.outcome": "结果",
		"scoreboard.date":    "日期",
		"scoreboard.all":     "全部",

		"screen.tooSmall": "窗口太小",

		"sound.on":  "开",
		"sound.off": "关",

		"language.switch": "🌐 中/EN",
	},
	English: {
		"game.title":   "🐍 Snake Game",
		"game.welcome": "Welcome to Snake Game!",

		"stats.score":     "Score",
		"stats.highScore": "High Score",
		"stats.level":     "Level",
		"stats.time":      "Time",
		"stats.sound":     "Sound",
		"stats.length":    "Length",

		"difficulty.label":  "Difficulty",
		"difficulty.easy":   "Easy",
		"difficulty.medium": "Medium",
		"difficulty.hard":   "Hard",
		"difficulty.expert": "Expert",

		"button.startGame": "Start Game",
		"button.pause":     "Pause",
		"button.resume":    "Resume",
		"button.reset":     "Reset",
		"button.playAgain": "Play Again",
		"button.mainMenu":  "Main Menu",

		"controls.title":      "🎮 Controls",
		"controls.move":       "Move Snake",
		"controls.pause":      "Pause/Resume",
		"controls.difficulty": "Difficulty",
		"controls.language":   "Language",
		"controls.sound":      "Sound on/off",
		"controls.scoreboard": "Scoreboard",
		"controls.screenshot": "Screenshot",
		"controls.quit":       "Quit",

		"game.paused":         "Game Paused",
		"game.pauseHint":      "Press Space to continue",
		"game.over":           "Game Over!",
		"game.victory":        "🎉 VICTORY! 🎉",
		"game.victoryMessage": "You've filled the entire board!",

		"final.score":          "Final Score",
		"final.level":          "Level Reached",
		"final.foodEaten":      "Food Eaten",
		"final.timePlayed":     "Time Played",
		"final.perfectScore":   "Perfect Score",
		"final.finalLevel":     "Final Level",
		"final.totalFood":      "Total Food Eaten",
		"final.completionTime": "Completion Time",
		"final.newRecord":      "🎉 New High Score! 🎉",
		"final.perfectGame":    "🏆 PERFECT GAME! 🏆",

		"scoreboard.title":   "Scoreboard",
		"scoreboard.empty":   "No runs yet",
		"scoreboard.rank":    "#",
		"scoreboard.outcome": "Outcome",
		"scoreboard.date":    "Date",
		"scoreboard.all":     "All",

		"screen.tooSmall": "Window too small",

		"sound.on":  "on",
		"sound.off": "off",

		"language.switch": "🌐 EN/中",
	},
}
