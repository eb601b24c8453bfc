package service

import "github.com/fanxi-showcase/internal/models"

func strPtr(s string) *string {
	return &s
}

func defaultAboutUs() *models.AboutUs {
	return &models.AboutUs{
		Title:             "关于我们",
		TitleEn:           strPtr("About Us"),
		TitleZh:           strPtr("关于我们"),
		Content:           "我们致力于为客户提供高质量的产品和优质的服务体验。\n\n通过持续的创新和改进，我们不断满足客户的需求，创造更大的价值。",
		ContentEn:         strPtr("We are committed to providing customers with high-quality products and excellent service experience.\n\nThrough continuous innovation and improvement, we constantly meet customer needs and create greater value."),
		ContentZh:         strPtr("我们致力为客户提供高质量的产品和优质的服务体验。\n\n通过持续的创新和改进，我们不断满足客户的需求，创造更大的价值。"),
		TextColor:         "#333333",
		BackgroundOverlay: "rgba(255, 255, 255, 0.8)",
		IsActive:          true,
	}
}

func defaultFooterInfo() *models.FooterInfo {
	return &models.FooterInfo{
		AboutTitle:        "关于我们",
		AboutTitleEn:      strPtr("About Us"),
		AboutContent:      "我们致力于为客户提供高质量的产品和优质的服务体验，通过持续的创新和改进，我们不断满足客户的需求。",
		AboutContentEn:    strPtr("We are committed to providing customers with high-quality products and excellent service experience. Through continuous innovation and improvement, we constantly meet customer needs."),
		ContactTitle:      "联系我们",
		ContactTitleEn:    strPtr("Contact Us"),
		ContactEmail:      strPtr("info@example.com"),
		ContactPhone:      strPtr("+86 123 4567 8900"),
		ContactAddress:    strPtr("中国，上海市"),
		ContactAddressEn:  strPtr("Shanghai, China"),
		SocialTitle:       "关注我们",
		SocialTitleEn:     strPtr("Follow Us"),
		QuickLinksTitle:   "快速链接",
		QuickLinksTitleEn: strPtr("Quick Links"),
		CopyrightText:     "© 2024 产品展示网站. 保留所有权利.",
		CopyrightTextEn:   strPtr("© 2024 Product Showcase Website. All rights reserved."),
		IsActive:          true,
	}
}

func defaultTopInfoBar() *models.TopInfoBar {
	return &models.TopInfoBar{
		Phone:       strPtr("400-123-4567"),
		Email:       strPtr("service@example.com"),
		WechatURL:   strPtr("#"),
		WeiboURL:    strPtr("https://weibo.com/"),
		QQURL:       strPtr("https://qzone.qq.com/"),
		GithubURL:   strPtr("https://github.com/"),
		LinkedinURL: strPtr("https://linkedin.com/"),
		IsActive:    true,
	}
}
